package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is inconsistent.
var (
	// ErrInvalidAuthConfigs indicates invalid password or brute-force
	// settings (for example, a bcrypt cost out of range).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidSessionConfigs indicates invalid cookie or CSRF settings.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidStorageConfigs indicates conflicting storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates a malformed public base URL or
	// mail relay setting.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
