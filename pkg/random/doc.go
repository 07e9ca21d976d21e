// Package random generates cryptographically random strings over a closed
// set of alphabets.
//
// A Generator is built once from one or more Alphabet values; the character
// set is resolved at construction so every call to String draws from a fixed
// table. Bytes from crypto/rand are mapped with rejection sampling, which
// keeps every character equally likely regardless of the set size.
//
//	gen, err := random.New(random.Lower, random.Upper, random.Digit)
//	if err != nil {
//		return err
//	}
//	token, err := gen.String(32)
package random
