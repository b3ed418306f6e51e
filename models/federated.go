package models

// FederatedClaims is the verified claim set extracted from a third-party
// identity token by the federated identity verifier.
type FederatedClaims struct {
	// Email is the address asserted by the identity provider.
	Email string `json:"email"`

	// Name is the display name asserted by the identity provider.
	Name string `json:"name"`

	// EmailVerified reports whether the provider has confirmed ownership
	// of Email. Logins with an unverified email are rejected before any
	// local account is looked up or created.
	EmailVerified bool `json:"email_verified"`
}
