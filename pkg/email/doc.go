// Package email sends transactional messages through a provider-agnostic
// EmailSender.
//
// Two senders are provided. NewPostmarkClient delivers through Postmark and
// is used when both Postmark tokens are configured. DevSender writes each
// message to a directory as an .html body plus a .json metadata file.
// WithRetry wraps either one and retries failed deliveries with a fixed
// delay; invalid parameters fail immediately.
//
// VerificationMailer renders the templ verification message and sends it:
//
//	sender := email.WithRetry(email.NewDevSender(cfg.DevDir), cfg.RetryAttempts, cfg.RetryDelay)
//	mailer := email.NewVerificationMailer(sender, "Snippets", "https://snippets.example",
//		email.WithLogger(log),
//	)
//	err := mailer.SendEmailVerification(ctx, "user@example.com", token)
//
// All failures wrap ErrInvalidParams, ErrInvalidConfig or ErrFailedToSendEmail
// and can be checked with errors.Is.
package email
