package session

import "errors"

var (
	// ErrSessionNotFound indicates the request carries no valid session token.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrNoCachedSession indicates the token is valid but the cached data is
	// missing, invalid or expired. The caller should fall back to its store.
	ErrNoCachedSession = errors.New("session.no_cached_session")

	// ErrPayloadTooLarge indicates the encoded cached-data cookie exceeds MaxPayloadSize.
	ErrPayloadTooLarge = errors.New("session.payload_too_large")

	// ErrEmptyToken indicates Issue was called without a session token.
	ErrEmptyToken = errors.New("session.empty_token")

	// ErrInvalidMaxAge indicates a configured cookie lifetime is not positive
	// or exceeds the 400-day cookie limit.
	ErrInvalidMaxAge = errors.New("session.invalid_max_age")

	// ErrEncodePayload indicates the cached data could not be serialised.
	ErrEncodePayload = errors.New("session.encode_payload_failed")
)
