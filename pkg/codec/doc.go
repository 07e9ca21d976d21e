// Package codec converts byte sequences to printable text and back.
//
// Two base64 alphabets share a single bit-packing implementation: Standard
// ("+/") and URLSafe ("-_"). Output may be padded with "=" to a multiple of
// four symbols. Decoding stops at the first padding character and rejects any
// symbol that is not part of the selected alphabet.
//
// Hex helpers produce lowercase digits and reject odd-length input or
// non-hex characters.
//
// # Usage
//
//	s := codec.Encode([]byte("hello"), codec.URLSafe, false) // "aGVsbG8"
//	b, err := codec.Decode(s, codec.URLSafe)
//
//	h := codec.EncodeHex([]byte{0xde, 0xad}) // "dead"
//	b, err = codec.DecodeHex(h)
//
// # Error Handling
//
// Decoding failures wrap ErrInvalidCharacter or ErrOddLength so callers can
// use errors.Is. Callers handling untrusted input are expected to treat any
// decode error as "absent" rather than surfacing it.
package codec
