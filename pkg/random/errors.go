package random

import "errors"

var (
	ErrEmptyAlphabet   = errors.New("random.empty_alphabet")
	ErrInvalidSize     = errors.New("random.invalid_size")
	ErrUnknownAlphabet = errors.New("random.unknown_alphabet")
	ErrEntropy         = errors.New("random.entropy_unavailable")
)
