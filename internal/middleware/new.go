package middleware

import (
	"clinic-backoffice/pkg/log"
)

// Config holds the settings the HTTP middleware chain needs.
type Config struct {
	JWTSecretKey     string
	RateLimitPerMin  int
	RateLimitEnabled bool
}

type Middleware struct {
	l           log.Logger
	jwtSecret   []byte
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:         l,
		jwtSecret: []byte(cfg.JWTSecretKey),
	}
	if cfg.RateLimitEnabled {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
