package email

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type retrySender struct {
	next     EmailSender
	attempts int
	delay    time.Duration
}

// WithRetry retries failed deliveries up to attempts times, sleeping delay
// between tries. Invalid parameters are never retried.
func WithRetry(next EmailSender, attempts int, delay time.Duration) EmailSender {
	if attempts < 1 {
		attempts = 1
	}
	return &retrySender{next: next, attempts: attempts, delay: delay}
}

func (s *retrySender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	var errs []error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		err := s.next.SendEmail(ctx, params)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrInvalidParams) {
			return err
		}
		errs = append(errs, err)

		if attempt == s.attempts {
			break
		}

		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(append(errs, ctx.Err())...)
		case <-timer.C:
		}
	}

	return fmt.Errorf("%w: gave up after %d attempt(s): %w", ErrFailedToSendEmail, s.attempts, errors.Join(errs...))
}
