package config

import (
	"errors"
	"time"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "todo-service"
	defaultTokenDuration  = 10 * time.Minute
	defaultRequestTimeout = 30 * time.Second

	// placeholderSignKey is the historical hard-coded development secret.
	// It is rejected outright: the signing key must come from the
	// environment, flags, or a config file.
	placeholderSignKey = "secret"
)

// validate applies defaults for optional fields and checks that every
// security-critical value is present and usable. It mutates the receiver
// in-place before returning validation errors.
func (c *StructuredConfig) validate() error {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}

	var errs []error
	if c.App.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}
	if c.App.TokenSignKey == placeholderSignKey {
		errs = append(errs, ErrPlaceholderTokenSignKey)
	}
	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}

	return errors.Join(errs...)
}
