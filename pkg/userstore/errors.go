package userstore

import (
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("userstore.invalid_input")

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
