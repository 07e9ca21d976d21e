package codec

import "fmt"

const hexDigits = "0123456789abcdef"

// EncodeHex renders every byte as two lowercase hex digits.
func EncodeHex(src []byte) string {
	out := make([]byte, len(src)*2)
	for i, b := range src {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0x0f]
	}
	return string(out)
}

// DecodeHex parses hex text. Both upper and lower case digits are accepted.
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddLength, len(s))
	}

	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := fromHexChar(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, s[i])
		}
		lo, ok := fromHexChar(s[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, s[i+1])
		}
		out[i/2] = hi<<4 | lo
	}

	return out, nil
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
