// Package password hashes and verifies credentials with scrypt.
//
// Stored hashes have the form "<hex salt>:<hex digest>". Each call to Hash
// draws a fresh 16-byte salt, so hashing the same password twice yields two
// different strings. Passwords are normalised to Unicode NFKC before key
// derivation so that visually identical input in different encodings
// produces the same digest.
//
// Derivation costs roughly 32 MiB and noticeable CPU time with the default
// parameters (N=16384, r=16, p=1). Hasher runs derivations on a bounded
// async.Pool so that a burst of logins cannot monopolise the process.
//
//	h, _ := password.NewHasher()
//	stored, err := h.Hash(ctx, "correct horse battery staple")
//	ok, err := h.Verify(ctx, stored, "correct horse battery staple")
//
// Verify never reports malformed stored values as errors: a value without
// exactly one colon, or with a digest that is not hex, simply does not match.
// The only errors Hasher.Verify returns come from the context.
package password
