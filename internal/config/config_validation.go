package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied by validate when a knob was left unset by every source.
const (
	DefaultHTTPAddress   = ":3000"
	DefaultTokenIssuer   = "bookvault"
	DefaultTokenDuration = 24 * time.Hour
	DefaultBcryptCost    = 10
	DefaultTokenInfoURL  = "https://oauth2.googleapis.com/tokeninfo"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills in the
// documented defaults for optional knobs.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.BcryptCost != 0 &&
		(cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost) {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = DefaultBcryptCost
	}
	if cfg.Federated.TokenInfoURL == "" {
		cfg.Federated.TokenInfoURL = DefaultTokenInfoURL
	}

	return nil
}
