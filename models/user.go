package models

import "time"

// AccountKind tags how a user account authenticates.
//
// Exactly one credential shape exists per kind: local accounts carry a
// bcrypt password hash, federated accounts carry none and delegate
// verification to the external identity provider. The users table enforces
// the same rule with a CHECK constraint, so an inconsistent record
// (federated with a password, local without one) cannot be persisted.
type AccountKind string

const (
	// AccountLocal marks an account registered with an email and password.
	AccountLocal AccountKind = "local"

	// AccountFederated marks an account created on first federated sign-in.
	// Such accounts have no local password and must keep using the
	// external identity provider to log in.
	AccountFederated AccountKind = "federated"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the
	// database on creation.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique address the account is registered under.
	// Stored case-sensitive; lookups are exact-match.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Empty for federated accounts. It is never serialized to JSON so the
	// hash cannot leak through an API response.
	PasswordHash string `json:"-"`

	// Kind tags the account's credential shape. See [AccountKind].
	Kind AccountKind `json:"kind"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsFederated reports whether the account was created via a federated
// identity provider and therefore has no local password.
func (u User) IsFederated() bool {
	return u.Kind == AccountFederated
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the request body of POST /users/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FederatedLoginRequest is the request body of POST /users/login-google.
// IDToken is the identity token minted by the external provider for the
// signed-in browser session.
type FederatedLoginRequest struct {
	IDToken string `json:"idToken"`
}
