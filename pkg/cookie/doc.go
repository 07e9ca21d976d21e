// Package cookie implements the Cookie and Set-Cookie header text format and
// a small manager for plain and HMAC-signed cookies.
//
// # Wire format
//
// Parse reads a Cookie request header into an ordered list of name/value
// pairs, percent-decoding values. ParseOne stops at the first cookie with
// the requested name.
//
// Serialize writes a Set-Cookie value. Values are percent-encoded and the
// attributes are emitted in a fixed order:
//
//	name=value; Max-Age; Domain; Path; Expires; HttpOnly; Secure; SameSite; Priority; Partitioned
//
// Before anything is written the options are validated, and every violation
// has its own sentinel error:
//
//   - a "__Secure-" name without Secure: ErrSecurePrefixRequiresSecure
//   - a "__Host-" name without Secure, with a Path other than "/" or with a
//     Domain: ErrHostPrefixRequiresSecure, ErrHostPrefixRequiresRootPath,
//     ErrHostPrefixForbidsDomain (checked in that order)
//   - Max-Age above 400 days: ErrMaxAgeTooLarge
//   - Expires more than 400 days ahead: ErrExpiresTooFar
//   - Partitioned without Secure: ErrPartitionedRequiresSecure
//
// A negative Max-Age is not an error; the attribute is simply left out.
//
// # Manager
//
// Manager carries default attributes (Path=/, HttpOnly, SameSite=Lax, or
// whatever Config supplies through NewFromConfig) and a signing secret. Signed values have the form value "." hex(HMAC-SHA256).
//
//	m, err := cookie.New(os.Getenv("SNIPPETS_SECRET"), cookie.WithSecure(true))
//	if err != nil {
//		return err
//	}
//
//	h, _ := m.SignedHeader("__Secure-snippets.session_token", token, cookie.WithMaxAge(604800))
//	w.Header().Add("Set-Cookie", h)
//	token, err := m.GetSigned(r, "__Secure-snippets.session_token")
//	if errors.Is(err, cookie.ErrInvalidSignature) {
//		// tampered
//	}
//
// Set and Clear append to the Set-Cookie header, so several cookies can be
// written in one response. The *Header and Lookup* variants work on raw
// header strings for callers that do not have an http.ResponseWriter.
package cookie
