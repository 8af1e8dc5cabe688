package config

import "errors"

var (
	ErrNoDatabaseDSN     = errors.New("no database DSN configured")
	ErrNoTokenSignKey    = errors.New("no token sign key configured")
	ErrNoPasswordHashKey = errors.New("no password hash key configured")
)
