package signer

import "errors"

var (
	ErrSecretTooShort = errors.New("signer.secret_too_short")
)
