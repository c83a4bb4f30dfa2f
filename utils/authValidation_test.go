package utils

import (
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRules(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"empty", "", true},
		{"single character", "x", false},
		{"short", "pw123", false},
		{"bcrypt limit", strings.Repeat("a", 72), false},
		{"past bcrypt limit", strings.Repeat("a", 73), true},
		{"multibyte past bcrypt limit", strings.Repeat("é", 37), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.password, PasswordRules()...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoleRules(t *testing.T) {
	for _, role := range Roles {
		assert.NoError(t, validation.Validate(role, RoleRules()...), role)
	}
	assert.Error(t, validation.Validate("Nurse", RoleRules()...))
	assert.Error(t, validation.Validate("admin", RoleRules()...))
	assert.Error(t, validation.Validate("", RoleRules()...))
}

func TestValidationErrors(t *testing.T) {
	assert.Nil(t, ValidationErrors(errors.New("boom")))

	errs := ValidationErrors(validation.Errors{
		"email":    errors.New("must be a valid email address"),
		"password": nil,
	})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"must be a valid email address"}, errs["email"])
	assert.NotContains(t, errs, "password")
}

func TestGenerateResetCode(t *testing.T) {
	code, err := GenerateResetCode()
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Regexp(t, `^[0-9]{6}$`, code)

	assert.Equal(t, "reset_code:ann@example.com", ResetCodeKey("ann@example.com"))
}
