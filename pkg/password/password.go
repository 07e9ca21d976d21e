package password

import (
	"crypto/rand"
	"errors"
	"strings"

	"golang.org/x/crypto/scrypt"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/snippets/pkg/codec"
	"github.com/dmitrymomot/snippets/pkg/signer"
)

const separator = ":"

// Hash derives a salted digest of password using DefaultParams.
func Hash(password string) (string, error) {
	return hashWith(DefaultParams(), password)
}

// Verify reports whether password matches a value produced by Hash.
func Verify(stored, password string) bool {
	return verifyWith(DefaultParams(), stored, password)
}

func hashWith(p Params, password string) (string, error) {
	raw := make([]byte, p.SaltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Join(ErrSaltGeneration, err)
	}
	salt := codec.EncodeHex(raw)

	digest, err := derive(p, password, salt)
	if err != nil {
		return "", err
	}

	return salt + separator + codec.EncodeHex(digest), nil
}

func verifyWith(p Params, stored, password string) bool {
	parts := strings.Split(stored, separator)
	if len(parts) != 2 {
		return false
	}

	want, err := codec.DecodeHex(parts[1])
	if err != nil {
		return false
	}

	got, err := derive(p, password, parts[0])
	if err != nil {
		return false
	}

	return signer.Equal(got, want)
}

// derive uses the hex salt text itself as the scrypt salt.
func derive(p Params, password, salt string) ([]byte, error) {
	normalized := norm.NFKC.String(password)

	digest, err := scrypt.Key([]byte(normalized), []byte(salt), p.N, p.R, p.P, p.KeyLen)
	if err != nil {
		return nil, errors.Join(ErrDerivation, err)
	}
	return digest, nil
}
