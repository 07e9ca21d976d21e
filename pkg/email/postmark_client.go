package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/snippets/pkg/validator"
)

// PostmarkSender delivers mail through Postmark's transactional API.
type PostmarkSender struct {
	api  *postmark.Client
	from string
	// replies land in the support inbox
	replyTo string
}

// NewPostmarkClient checks cfg and builds a Postmark-backed EmailSender.
func NewPostmarkClient(cfg Config) (*PostmarkSender, error) {
	if err := checkPostmarkConfig(cfg); err != nil {
		return nil, err
	}
	return &PostmarkSender{
		api:     postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		from:    cfg.From(),
		replyTo: cfg.SupportEmail,
	}, nil
}

// MustNewPostmarkClient panics when cfg is incomplete.
func MustNewPostmarkClient(cfg Config) *PostmarkSender {
	s, err := NewPostmarkClient(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

func checkPostmarkConfig(cfg Config) error {
	required := []struct{ name, value string }{
		{"PostmarkServerToken", cfg.PostmarkServerToken},
		{"PostmarkAccountToken", cfg.PostmarkAccountToken},
		{"SenderEmail", cfg.SenderEmail},
		{"SupportEmail", cfg.SupportEmail},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidConfig, f.name)
		}
	}
	for _, f := range required[2:] {
		if !validator.IsEmail(f.value) {
			return fmt.Errorf("%w: %s must be a valid email address", ErrInvalidConfig, f.name)
		}
	}
	return nil
}

// SendEmail tracks opens but leaves links untouched so verification URLs
// reach the recipient as generated.
func (s *PostmarkSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	res, err := s.api.SendEmail(ctx, postmark.Email{
		From:       s.from,
		ReplyTo:    s.replyTo,
		To:         params.SendTo,
		Subject:    params.Subject,
		Tag:        params.Tag,
		HTMLBody:   params.BodyHTML,
		TrackOpens: true,
		TrackLinks: "None",
	})
	switch {
	case err != nil:
		return errors.Join(ErrFailedToSendEmail, err)
	case res.ErrorCode != 0:
		return fmt.Errorf("%w: postmark code %d: %s", ErrFailedToSendEmail, res.ErrorCode, res.Message)
	}
	return nil
}
