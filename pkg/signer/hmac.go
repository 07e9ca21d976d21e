package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/dmitrymomot/snippets/pkg/codec"
)

// MinSecretLength is the shortest secret accepted by New.
const MinSecretLength = 12

const separator = "."

// Sign returns the lowercase hex HMAC-SHA256 tag of message under secret.
func Sign(message, secret string) string {
	return codec.EncodeHex(tag(message, secret))
}

// Verify recomputes the tag of message and compares it with hexSignature
// in constant time. Malformed hex yields false.
func Verify(message, secret, hexSignature string) bool {
	got, err := codec.DecodeHex(hexSignature)
	if err != nil {
		return false
	}
	return Equal(tag(message, secret), got)
}

func tag(message, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return mac.Sum(nil)
}

// Signer binds the MAC functions to one immutable secret.
type Signer struct {
	secret string
}

// New returns a Signer for secret. The secret must be at least MinSecretLength characters.
func New(secret string) (*Signer, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: have %d chars, need at least %d", ErrSecretTooShort, len(secret), MinSecretLength)
	}
	return &Signer{secret: secret}, nil
}

// Sign returns the hex tag of message.
func (s *Signer) Sign(message string) string {
	return Sign(message, s.secret)
}

// Verify checks a hex tag for message.
func (s *Signer) Verify(message, hexSignature string) bool {
	return Verify(message, s.secret, hexSignature)
}

// SignValue returns value with its tag appended after a dot.
func (s *Signer) SignValue(value string) string {
	return value + separator + s.Sign(value)
}

// UnsignValue splits a signed value at its last dot and verifies the tag.
// It returns false for values without a separator or with a bad tag.
func (s *Signer) UnsignValue(signed string) (string, bool) {
	i := strings.LastIndex(signed, separator)
	if i < 0 {
		return "", false
	}

	value, sig := signed[:i], signed[i+1:]
	if !s.Verify(value, sig) {
		return "", false
	}
	return value, true
}
