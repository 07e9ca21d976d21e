package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
)

// Alphabet is one of the supported character classes.
type Alphabet int

const (
	Lower          Alphabet = iota // a-z
	Upper                          // A-Z
	Digit                          // 0-9
	DashUnderscore                 // -_
)

func (a Alphabet) chars() (string, error) {
	switch a {
	case Lower:
		return "abcdefghijklmnopqrstuvwxyz", nil
	case Upper:
		return "ABCDEFGHIJKLMNOPQRSTUVWXYZ", nil
	case Digit:
		return "0123456789", nil
	case DashUnderscore:
		return "-_", nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownAlphabet, int(a))
}

// String returns the range notation of the alphabet.
func (a Alphabet) String() string {
	switch a {
	case Lower:
		return "a-z"
	case Upper:
		return "A-Z"
	case Digit:
		return "0-9"
	case DashUnderscore:
		return "-_"
	}
	return "unknown"
}

// charset returns the union of the alphabets, each character once, in
// first-seen order.
func charset(alphabets []Alphabet) (string, error) {
	var (
		b    strings.Builder
		seen [128]bool
	)
	for _, a := range alphabets {
		chars, err := a.chars()
		if err != nil {
			return "", err
		}
		for i := range len(chars) {
			if c := chars[i]; !seen[c] {
				seen[c] = true
				b.WriteByte(c)
			}
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyAlphabet
	}
	return b.String(), nil
}

// Generator produces random strings over a fixed character set.
type Generator struct {
	charset string
}

// New builds a generator over the union of the given alphabets.
func New(alphabets ...Alphabet) (*Generator, error) {
	cs, err := charset(alphabets)
	if err != nil {
		return nil, err
	}
	return &Generator{charset: cs}, nil
}

// MustNew is like New but panics on error. Intended for package-level vars.
func MustNew(alphabets ...Alphabet) *Generator {
	g, err := New(alphabets...)
	if err != nil {
		panic(err)
	}
	return g
}

// String returns a random string of the given size. When override alphabets
// are passed they replace the generator's set for this call only.
func (g *Generator) String(size int, override ...Alphabet) (string, error) {
	if size < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	cs := g.charset
	if len(override) > 0 {
		var err error
		if cs, err = charset(override); err != nil {
			return "", err
		}
	}

	n := len(cs)
	maxValid := 256 / n * n

	buf := make([]byte, size*2)
	idx := len(buf)
	out := make([]byte, 0, size)

	for len(out) < size {
		if idx >= len(buf) {
			if _, err := rand.Read(buf); err != nil {
				return "", errors.Join(ErrEntropy, err)
			}
			idx = 0
		}

		v := int(buf[idx])
		idx++

		if v < maxValid {
			out = append(out, cs[v%n])
		}
	}

	return string(out), nil
}
