package adapter

import "errors"

var (
	// ErrTokenRejected is returned when the identity provider refuses to
	// validate the presented ID token (invalid, expired, or malformed).
	ErrTokenRejected = errors.New("identity token rejected by provider")

	// ErrAudienceMismatch is returned when the token was issued for a
	// different OAuth client than this application.
	ErrAudienceMismatch = errors.New("identity token audience mismatch")
)
