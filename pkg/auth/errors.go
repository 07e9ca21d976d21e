package auth

import "errors"

var (
	ErrUserNotFound       = errors.New("auth.user_not_found")
	ErrPasswordNotFound   = errors.New("auth.password_not_found")
	ErrEmailAlreadyExists = errors.New("auth.email_already_exists")
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")
	ErrEmailNotVerified   = errors.New("auth.email_not_verified")
)

var (
	ErrTokenMissing        = errors.New("auth.token_missing")
	ErrTokenExpired        = errors.New("auth.token_expired")
	ErrTokenInvalid        = errors.New("auth.token_invalid")
	ErrTokenPayloadInvalid = errors.New("auth.token_payload_invalid")
)

var (
	ErrSessionNotFound = errors.New("auth.session_not_found")
	ErrSessionExpired  = errors.New("auth.session_expired")
)

// ErrMissingDependency indicates NewService was called with a nil collaborator.
var ErrMissingDependency = errors.New("auth.missing_dependency")
