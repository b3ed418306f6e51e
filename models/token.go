package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every bearer token issued by the
// API: the registered claims (iss, sub, iat, exp) plus the user's email and
// display name so downstream handlers never need a user lookup to identify
// the caller.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the authenticated user's registered email address.
	Email string `json:"email"`

	// Name is the authenticated user's display name.
	Name string `json:"name"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// together with the decoded [TokenClaims].
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP responses.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim converted to
// int64, populated during token construction or parsing to avoid repeated
// string-to-int conversions.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
