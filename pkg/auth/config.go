package auth

import "time"

// Config holds the authentication flow settings.
type Config struct {
	AllowUnverifiedEmail bool          `env:"ALLOW_UNVERIFIED_EMAIL" envDefault:"false"`
	VerificationTokenTTL time.Duration `env:"EMAIL_VERIFICATION_TTL" envDefault:"15m"`
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	ShortSessionTTL      time.Duration `env:"SHORT_SESSION_TTL" envDefault:"24h"`
	SessionTokenLength   int           `env:"SESSION_TOKEN_LENGTH" envDefault:"32"`
	EmailTimeout         time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns the settings used when no Config is supplied.
func DefaultConfig() Config {
	return Config{
		VerificationTokenTTL: 15 * time.Minute,
		SessionTTL:           7 * 24 * time.Hour,
		ShortSessionTTL:      24 * time.Hour,
		SessionTokenLength:   32,
		EmailTimeout:         30 * time.Second,
	}
}

const (
	PasswordMinLength = 8
	PasswordMaxLength = 72
)
