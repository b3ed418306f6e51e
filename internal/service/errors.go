package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrFederatedLoginRequired is returned when a password login is
	// attempted against an account created via a federated provider.
	ErrFederatedLoginRequired = errors.New("account requires federated login")

	// ErrEmailNotVerified is returned when the identity provider reports
	// the token's email as unverified. No account is looked up or created.
	ErrEmailNotVerified = errors.New("email not verified by identity provider")

	// ErrInvalidIdentityToken normalises every verifier-level failure
	// (rejected, expired, wrong audience) so callers do not need to inspect
	// adapter errors.
	ErrInvalidIdentityToken = errors.New("identity token is invalid")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
