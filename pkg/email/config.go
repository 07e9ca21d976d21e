package email

import "time"

// Config holds email service configuration.
// Postmark tokens are optional: without them the application falls back to
// DevSender and writes messages to DevDir.
type Config struct {
	PostmarkServerToken  string        `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string        `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderName           string        `env:"SENDER_NAME" envDefault:"Snippets"`
	SenderEmail          string        `env:"SENDER_EMAIL" envDefault:"onboarding@snippets.local"`
	SupportEmail         string        `env:"SUPPORT_EMAIL" envDefault:"support@snippets.local"`
	DevDir               string        `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
	RetryAttempts        int           `env:"EMAIL_RETRY_ATTEMPTS" envDefault:"3"`
	RetryDelay           time.Duration `env:"EMAIL_RETRY_DELAY" envDefault:"2s"`
}

// UsePostmark reports whether both Postmark tokens are configured.
func (c Config) UsePostmark() bool {
	return c.PostmarkServerToken != "" && c.PostmarkAccountToken != ""
}

// From formats the sender as "Name <address>".
func (c Config) From() string {
	if c.SenderName == "" {
		return c.SenderEmail
	}
	return c.SenderName + " <" + c.SenderEmail + ">"
}
