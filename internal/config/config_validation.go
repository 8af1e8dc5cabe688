package config

import (
	"errors"
	"time"
)

// Defaults applied after all sources are merged. Only zero fields are
// touched, so any explicit source value wins.
const (
	defaultHTTPAddress      = "0.0.0.0:8080"
	defaultTokenIssuer      = "savedit"
	defaultTokenDuration    = 24 * time.Hour
	defaultRequestTimeout   = 30 * time.Second
	defaultMetadataTimeout  = 10 * time.Second
	defaultDispatchInterval = time.Minute
	defaultClientTimeout    = 15 * time.Second
	defaultUserAgent        = "saveditbot/1.0 (+https://savedit.app)"
)

func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = defaultTokenIssuer
	}
	if c.Auth.TokenDuration == 0 {
		c.Auth.TokenDuration = defaultTokenDuration
	}
	if c.Functions.MetadataTimeout == 0 {
		c.Functions.MetadataTimeout = defaultMetadataTimeout
	}
	if c.Functions.MetadataUserAgent == "" {
		c.Functions.MetadataUserAgent = defaultUserAgent
	}
	if c.Workers.DispatchInterval == 0 {
		c.Workers.DispatchInterval = defaultDispatchInterval
	}
	if c.Client.Timeout == 0 {
		c.Client.Timeout = defaultClientTimeout
	}
}

// validate rejects configurations the server cannot start with. Client
// fields are not validated here: the adapter applies its own defaults.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}
	if c.Auth.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}
	if c.Auth.PasswordHashKey == "" {
		errs = append(errs, ErrNoPasswordHashKey)
	}

	return errors.Join(errs...)
}
