package session

import "time"

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithConfig replaces the whole configuration. The secret passed to New wins
// over cfg.Secret.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		secret := m.config.Secret
		m.config = cfg
		m.config.Secret = secret
	}
}

// WithCookiePrefix sets the name segment shared by all session cookies.
func WithCookiePrefix(prefix string) Option {
	return func(m *Manager) {
		m.config.CookiePrefix = prefix
	}
}

// WithSecureCookies switches to "__Secure-" cookie names.
func WithSecureCookies(secure bool) Option {
	return func(m *Manager) {
		m.config.SecureCookies = secure
	}
}

// WithClock overrides the time source, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}
