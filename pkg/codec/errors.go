package codec

import "errors"

var (
	ErrInvalidCharacter = errors.New("codec.invalid_character")
	ErrOddLength        = errors.New("codec.odd_length")
)
