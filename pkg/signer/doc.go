// Package signer implements HMAC-SHA256 message authentication with
// hex-rendered tags and a constant-time byte comparator.
//
// The signed value wire format is "<value>.<hex(hmac-sha256(value))>".
// Verification never errors: a missing separator, malformed hex or a wrong
// tag all yield false, so untrusted input cannot be used as an oracle.
//
//	s, err := signer.New(secret)
//	signed := s.SignValue("token")           // "token.9f86d0..."
//	value, ok := s.UnsignValue(signed)       // "token", true
package signer
