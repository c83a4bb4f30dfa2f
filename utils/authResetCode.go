package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// ResetCodeTTL is how long an emailed reset code stays valid.
const ResetCodeTTL = 15 * time.Minute

// MaxResetAttempts is how many wrong guesses a reset code survives.
const MaxResetAttempts = 5

// GenerateResetCode generates a random 6-digit reset code.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// ResetCodeKey is the cache key holding the reset code of an email.
func ResetCodeKey(email string) string {
	return "reset_code:" + email
}

// ResetAttemptsKey is the cache key counting wrong guesses against the reset
// code of an email.
func ResetAttemptsKey(email string) string {
	return "reset_attempts:" + email
}
