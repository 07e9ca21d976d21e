package password

import "errors"

var (
	ErrSaltGeneration = errors.New("password.salt_generation_failed")
	ErrDerivation     = errors.New("password.derivation_failed")
)
