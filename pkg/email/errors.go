package email

import "errors"

var (
	ErrFailedToSendEmail = errors.New("email.send_failed")
	ErrInvalidConfig     = errors.New("email.invalid_config")
	ErrInvalidParams     = errors.New("email.invalid_params")
)
