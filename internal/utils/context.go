// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, HTTP client initialization, JWT token
// generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/bookvault/bookvault/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthClaimsCtxKey is the key used to store the verified token claims in the
// request context. Used together with GetAuthClaimsFromContext for type-safe
// retrieval by downstream handlers.
var AuthClaimsCtxKey = contextKey("authClaims")

// GetAuthClaimsFromContext retrieves the verified token claims from the
// context.
//
// Returns the claims and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetAuthClaimsFromContext(ctx context.Context) (models.TokenClaims, bool) {
	claims, ok := ctx.Value(AuthClaimsCtxKey).(models.TokenClaims)
	return claims, ok
}
