package email

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/dmitrymomot/snippets/pkg/email/templates"
	"github.com/dmitrymomot/snippets/pkg/logger"
)

const (
	// VerificationPath is the route that consumes the email-verification token.
	VerificationPath = "/api/v1/auth/email-verification"

	verificationSubject = "Confirm your email address"
	verificationTag     = "email-verification"
)

// VerificationMailer renders and sends the account verification message.
type VerificationMailer struct {
	sender  EmailSender
	appName string
	appURL  string
	logger  *slog.Logger
}

// VerificationOption configures a VerificationMailer.
type VerificationOption func(*VerificationMailer)

// WithLogger sets the logger used to report delivery results.
func WithLogger(l *slog.Logger) VerificationOption {
	return func(m *VerificationMailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewVerificationMailer creates a mailer that links to appURL + VerificationPath.
func NewVerificationMailer(sender EmailSender, appName, appURL string, opts ...VerificationOption) *VerificationMailer {
	m := &VerificationMailer{
		sender:  sender,
		appName: appName,
		appURL:  strings.TrimRight(appURL, "/"),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// VerificationURL returns the link embedded in the message.
func (m *VerificationMailer) VerificationURL(token string) string {
	return m.appURL + VerificationPath + "?token=" + url.QueryEscape(token)
}

// SendEmailVerification emails address a link carrying token.
func (m *VerificationMailer) SendEmailVerification(ctx context.Context, address, token string) error {
	if token == "" {
		return errors.Join(ErrInvalidParams, errors.New("verification token is empty"))
	}

	body, err := templates.Render(ctx, templates.VerificationEmail(templates.VerificationEmailProps{
		AppName:         m.appName,
		Username:        username(address),
		VerificationURL: m.VerificationURL(token),
	}))
	if err != nil {
		m.logger.ErrorContext(ctx, "render verification email", logger.Status("EMAIL_VERIFICATION_ERROR"), logger.Error(err))
		return errors.Join(ErrFailedToSendEmail, err)
	}

	err = m.sender.SendEmail(ctx, SendEmailParams{
		SendTo:   address,
		Subject:  verificationSubject,
		BodyHTML: body,
		Tag:      verificationTag,
	})
	if err != nil {
		m.logger.ErrorContext(ctx, "send verification email", logger.Status("EMAIL_VERIFICATION_ERROR"), logger.Error(err))
		return err
	}

	m.logger.InfoContext(ctx, "verification email sent", logger.Status("EMAIL_VERIFICATION_SUCCESS"))
	return nil
}

func username(address string) string {
	local, _, _ := strings.Cut(address, "@")
	return local
}
