package config

import (
	"strings"

	"github.com/dmitrymomot/snippets/pkg/environment"
)

// App is the process-level configuration shared by every component.
type App struct {
	Name    string `env:"APP_NAME" envDefault:"Snippets"`
	URL     string `env:"APP_URL" envDefault:"http://localhost:3000"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_SERVICE" envDefault:"snippets"`
}

// Environment parses Env.
func (a App) Environment() environment.Environment {
	return environment.Parse(a.Env)
}

// SecureCookies reports whether session cookies must carry the __Secure-
// prefix: the app is served over https or runs in production.
func (a App) SecureCookies() bool {
	return strings.HasPrefix(strings.ToLower(a.URL), "https://") || a.Environment().IsProduction()
}
