package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Callers can
// match them with [errors.Is]; several may be joined into one error.
var (
	// ErrNoTokenSignKey is returned when no JWT signing key was provided
	// through any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is required")

	// ErrPlaceholderTokenSignKey is returned when the signing key equals
	// the well-known development placeholder and must not be deployed.
	ErrPlaceholderTokenSignKey = errors.New("token sign key is the development placeholder")

	// ErrNoDatabaseDSN is returned when no database connection string was
	// provided through any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is required")
)
