package jwt

import "errors"

// Parse and Generate failures. Expiry is reported separately so callers can
// tell a stale link from a forged one.
var (
	ErrInvalidToken            = errors.New("jwt.invalid_token")
	ErrExpiredToken            = errors.New("jwt.expired_token")
	ErrMissingSigningKey       = errors.New("jwt.missing_signing_key")
	ErrMissingClaims           = errors.New("jwt.missing_claims")
	ErrUnexpectedSigningMethod = errors.New("jwt.unexpected_signing_method")
)
