// Package config loads and validates the application configuration.
//
// Values are gathered from three sources — environment variables,
// command-line flags, and an optional JSON file — merged through a builder
// so that the first non-zero value for a field wins, and validated before
// the application starts. Security-critical values (the JWT signing key and
// the database DSN) have no defaults and must be supplied explicitly.
package config
