package cookie

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds the attributes shared by every cookie a Manager writes.
// Secure and Max-Age are decided per cookie by the caller.
type Config struct {
	// Secret is supplied by the owner of the manager, never read from env.
	Secret   string
	Path     string `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`
	HttpOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite string `env:"COOKIE_SAME_SITE" envDefault:"Lax"`
	Priority string `env:"COOKIE_PRIORITY" envDefault:""`
}

// DefaultConfig returns default cookie configuration.
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		HttpOnly: true,
		SameSite: "Lax",
	}
}

// ParseSameSite maps "Strict", "Lax" and "None" (any case) to http.SameSite.
// The empty string maps to http.SameSiteDefaultMode, which omits the attribute.
func ParseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return http.SameSiteDefaultMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	}
	return 0, fmt.Errorf("%w: same-site %q", ErrInvalidAttribute, s)
}

// NewFromConfig creates a new Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	sameSite, err := ParseSameSite(cfg.SameSite)
	if err != nil {
		return nil, err
	}

	configOpts := []Option{
		WithPath(cfg.Path),
		WithDomain(cfg.Domain),
		WithHTTPOnly(cfg.HttpOnly),
		WithSameSite(sameSite),
		WithPriority(Priority(cfg.Priority)),
	}

	return New(cfg.Secret, append(configOpts, opts...)...)
}
