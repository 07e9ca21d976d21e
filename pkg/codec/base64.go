package codec

import (
	"fmt"
	"strings"
)

const padChar = '='

// Alphabet is a 64-symbol base64 alphabet with its reverse lookup table.
type Alphabet struct {
	symbols   string
	decodeMap map[rune]uint32
}

var (
	// Standard is the RFC 4648 base64 alphabet.
	Standard = newAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")
	// URLSafe is the RFC 4648 base64url alphabet.
	URLSafe = newAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_")
)

func newAlphabet(symbols string) *Alphabet {
	m := make(map[rune]uint32, len(symbols))
	for i, r := range symbols {
		m[r] = uint32(i)
	}
	return &Alphabet{symbols: symbols, decodeMap: m}
}

// Encode packs src into 6-bit symbols of the given alphabet.
// When padded is true the output is extended with '=' to a multiple of 4.
func Encode(src []byte, a *Alphabet, padded bool) string {
	var sb strings.Builder
	sb.Grow((len(src)+2)/3*4 + 1)

	var buffer uint32
	shift := 0

	for _, b := range src {
		buffer = (buffer << 8) | uint32(b)
		shift += 8
		for shift >= 6 {
			shift -= 6
			sb.WriteByte(a.symbols[(buffer>>shift)&0x3f])
		}
		// only the unconsumed low bits matter
		buffer &= (1 << shift) - 1
	}

	if shift > 0 {
		sb.WriteByte(a.symbols[(buffer<<(6-shift))&0x3f])
	}

	if padded {
		for sb.Len()%4 != 0 {
			sb.WriteByte(padChar)
		}
	}

	return sb.String()
}

// Decode reverses Encode. Decoding stops at the first '=' character.
func Decode(s string, a *Alphabet) ([]byte, error) {
	out := make([]byte, 0, len(s)*3/4)

	var buffer uint32
	bits := 0

	for _, r := range s {
		if r == padChar {
			break
		}

		v, ok := a.decodeMap[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
		}

		buffer = (buffer << 6) | v
		bits += 6

		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buffer>>bits))
			buffer &= (1 << bits) - 1
		}
	}

	return out, nil
}

// EncodeBase64URL encodes src with the URL-safe alphabet and no padding.
func EncodeBase64URL(src []byte) string {
	return Encode(src, URLSafe, false)
}

// DecodeBase64URL decodes URL-safe base64 text, padded or not.
func DecodeBase64URL(s string) ([]byte, error) {
	return Decode(s, URLSafe)
}
