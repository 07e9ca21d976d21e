package signer

// Equal reports whether a and b hold the same bytes.
// Length is not treated as secret; content comparison never short-circuits.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

// EqualString is Equal over the bytes of two strings.
func EqualString(a, b string) bool {
	return Equal([]byte(a), []byte(b))
}
