package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash of plaintext with the given cost.
// bcrypt embeds a fresh random salt in every hash, so two calls with the
// same input never produce equal output.
func HashPassword(plaintext string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the given bcrypt hash.
// The comparison is performed by bcrypt itself and is safe against timing
// side channels; any mismatch or malformed hash yields false.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
