package utils

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Allowed user roles.
const (
	RoleAdmin   = "Admin"
	RoleDoctor  = "Doctor"
	RolePatient = "Patient"
)

// Roles lists every role a user may hold.
var Roles = []string{RoleAdmin, RoleDoctor, RolePatient}

// ErrPasswordLength is returned when a password is longer than bcrypt accepts.
var ErrPasswordLength = errors.New("password must be at most 72 bytes long")

// PasswordRules returns the rules applied to every new password.
func PasswordRules() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		validation.By(validatePassword),
	}
}

// RoleRules returns the rules applied to a role field.
func RoleRules() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		validation.In(RoleAdmin, RoleDoctor, RolePatient).Error("role must be one of Admin, Doctor, Patient"),
	}
}

// validatePassword rejects passwords bcrypt would truncate. Any non-empty
// password is otherwise accepted.
func validatePassword(value interface{}) error {
	password, _ := value.(string)
	if len(password) > 72 {
		return ErrPasswordLength
	}
	return nil
}

// ValidationErrors flattens an ozzo-validation error into field -> messages.
// It returns nil when err is not a validation failure.
func ValidationErrors(err error) map[string][]string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil
	}

	out := make(map[string][]string, len(errs))
	for field, fieldErr := range errs {
		if fieldErr == nil {
			continue
		}
		var nested validation.Errors
		if errors.As(fieldErr, &nested) {
			for sub, msgs := range ValidationErrors(nested) {
				out[field+"."+sub] = append(out[field+"."+sub], msgs...)
			}
			continue
		}
		out[field] = append(out[field], fieldErr.Error())
	}
	return out
}
