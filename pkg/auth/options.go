package auth

import (
	"log/slog"
	"time"
)

// Option configures a Service.
type Option func(*Service)

// WithConfig replaces the flow settings. Zero fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(s *Service) {
		def := DefaultConfig()
		if cfg.VerificationTokenTTL <= 0 {
			cfg.VerificationTokenTTL = def.VerificationTokenTTL
		}
		if cfg.SessionTTL <= 0 {
			cfg.SessionTTL = def.SessionTTL
		}
		if cfg.ShortSessionTTL <= 0 {
			cfg.ShortSessionTTL = def.ShortSessionTTL
		}
		if cfg.SessionTokenLength <= 0 {
			cfg.SessionTokenLength = def.SessionTokenLength
		}
		if cfg.EmailTimeout <= 0 {
			cfg.EmailTimeout = def.EmailTimeout
		}
		s.config = cfg
	}
}

// WithAllowUnverifiedEmail lets users log in before verifying their email.
func WithAllowUnverifiedEmail(allow bool) Option {
	return func(s *Service) {
		s.config.AllowUnverifiedEmail = allow
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source for session expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}
