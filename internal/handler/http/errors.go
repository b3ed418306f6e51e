package http

import "errors"

// Sentinel errors used by the authentication middleware when inspecting the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header is present
	// but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
