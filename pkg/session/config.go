package session

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/snippets/pkg/cookie"
)

// Config holds session cookie configuration.
type Config struct {
	// Secret signs every session cookie. At least 12 characters.
	Secret string `env:"SNIPPETS_SECRET,required,notEmpty"`

	// CookiePrefix is placed between the security prefix and the cookie name.
	CookiePrefix string `env:"SESSION_COOKIE_PREFIX" envDefault:"snippets"`

	// SecureCookies adds the "__Secure-" name prefix and with it the Secure flag.
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`

	TokenMaxAge  time.Duration `env:"SESSION_TOKEN_MAX_AGE" envDefault:"168h"`
	DataMaxAge   time.Duration `env:"SESSION_DATA_MAX_AGE" envDefault:"5m"`
	MarkerMaxAge time.Duration `env:"SESSION_DO_NOT_REMEMBER_MAX_AGE" envDefault:"168h"`

	// Cookie carries the shared attributes (COOKIE_PATH, COOKIE_DOMAIN,
	// COOKIE_SAME_SITE, ...). Its Secret is always replaced by Secret.
	Cookie cookie.Config
}

// DefaultConfig returns default session configuration without a secret.
func DefaultConfig() Config {
	return Config{
		CookiePrefix:  DefaultCookiePrefix,
		SecureCookies: false,
		TokenMaxAge:   7 * 24 * time.Hour,
		DataMaxAge:    5 * time.Minute,
		MarkerMaxAge:  7 * 24 * time.Hour,
		Cookie:        cookie.DefaultConfig(),
	}
}

// validate rejects lifetimes that would make every issue or read fail.
// Cookie lifetimes are whole seconds, so anything under one second is zero.
func (c Config) validate() error {
	limit := time.Duration(cookie.MaxAgeLimit) * time.Second
	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"token max age", c.TokenMaxAge},
		{"data max age", c.DataMaxAge},
		{"do-not-remember max age", c.MarkerMaxAge},
	} {
		if d.value < time.Second || d.value > limit {
			return fmt.Errorf("%w: %s %s must be between 1s and 400 days", ErrInvalidMaxAge, d.name, d.value)
		}
	}
	return nil
}

// NewFromConfig creates a new Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	return New(cfg.Secret, append([]Option{WithConfig(cfg)}, opts...)...)
}
