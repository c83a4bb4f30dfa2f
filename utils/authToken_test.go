package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTokenKey = "0123456789abcdef0123456789abcdef"

func testSettings() TokenSettings {
	return TokenSettings{
		Key:      testTokenKey,
		Issuer:   "HospitalManagement.Api",
		Audience: "HospitalManagement.Client",
		TTL:      time.Hour,
	}
}

func TestJWTMaker_RoundTrip(t *testing.T) {
	maker, err := NewJWTMaker(testSettings())
	require.NoError(t, err)

	token, issued, err := maker.CreateToken(7, "Ann Doe", "ann@example.com", RoleDoctor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Ann Doe", claims.Name)
	assert.Equal(t, "ann@example.com", claims.Email)
	assert.Equal(t, RoleDoctor, claims.Role)
	assert.True(t, issued.ExpiresAt.Equal(claims.ExpiresAt))
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWTMaker_ExpiredToken(t *testing.T) {
	maker, err := NewJWTMaker(testSettings())
	require.NoError(t, err)

	maker.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := maker.CreateToken(1, "Old", "old@example.com", RoleAdmin)
	require.NoError(t, err)

	maker.now = time.Now
	_, err = maker.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTMaker_RejectsForeignTokens(t *testing.T) {
	maker, err := NewJWTMaker(testSettings())
	require.NoError(t, err)

	otherAudience := testSettings()
	otherAudience.Audience = "Someone.Else"
	audienceMaker, err := NewJWTMaker(otherAudience)
	require.NoError(t, err)

	otherIssuer := testSettings()
	otherIssuer.Issuer = "Someone.Else"
	issuerMaker, err := NewJWTMaker(otherIssuer)
	require.NoError(t, err)

	otherKey := testSettings()
	otherKey.Key = strings.Repeat("k", 32)
	keyMaker, err := NewJWTMaker(otherKey)
	require.NoError(t, err)

	for name, m := range map[string]*JWTMaker{
		"audience": audienceMaker,
		"issuer":   issuerMaker,
		"key":      keyMaker,
	} {
		t.Run(name, func(t *testing.T) {
			token, _, err := m.CreateToken(1, "A", "a@example.com", RoleAdmin)
			require.NoError(t, err)

			_, err = maker.VerifyToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	_, err = maker.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasetoMaker_RoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(testSettings())
	require.NoError(t, err)

	token, _, err := maker.CreateToken(3, "Pat", "pat@example.com", RolePatient)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v2.local."))

	claims, err := maker.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "Pat", claims.Name)
	assert.Equal(t, "pat@example.com", claims.Email)
	assert.Equal(t, RolePatient, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestPasetoMaker_ExpiredToken(t *testing.T) {
	maker, err := NewPasetoMaker(testSettings())
	require.NoError(t, err)

	maker.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := maker.CreateToken(1, "Old", "old@example.com", RoleAdmin)
	require.NoError(t, err)

	maker.now = time.Now
	_, err = maker.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestPasetoMaker_RejectsForeignTokens(t *testing.T) {
	maker, err := NewPasetoMaker(testSettings())
	require.NoError(t, err)

	otherAudience := testSettings()
	otherAudience.Audience = "Someone.Else"
	audienceMaker, err := NewPasetoMaker(otherAudience)
	require.NoError(t, err)

	token, _, err := audienceMaker.CreateToken(1, "A", "a@example.com", RoleAdmin)
	require.NoError(t, err)
	_, err = maker.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	jwtMaker, err := NewJWTMaker(testSettings())
	require.NoError(t, err)
	jwtToken, _, err := jwtMaker.CreateToken(1, "A", "a@example.com", RoleAdmin)
	require.NoError(t, err)
	_, err = maker.VerifyToken(jwtToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenMaker(t *testing.T) {
	m, err := NewTokenMaker("", testSettings())
	require.NoError(t, err)
	assert.IsType(t, &JWTMaker{}, m)

	m, err = NewTokenMaker("paseto", testSettings())
	require.NoError(t, err)
	assert.IsType(t, &PasetoMaker{}, m)

	_, err = NewTokenMaker("saml", testSettings())
	assert.Error(t, err)

	short := testSettings()
	short.Key = "too-short"
	_, err = NewTokenMaker("jwt", short)
	assert.Error(t, err)

	long := testSettings()
	long.Key = testTokenKey + "extra"
	_, err = NewTokenMaker("jwt", long)
	assert.NoError(t, err)
	_, err = NewTokenMaker("paseto", long)
	assert.Error(t, err)

	noTTL := testSettings()
	noTTL.TTL = 0
	_, err = NewTokenMaker("jwt", noTTL)
	assert.Error(t, err)
}
