package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates invalid auth settings
	// (for example, a missing token sign key or an out-of-range bcrypt cost).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
