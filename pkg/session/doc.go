// Package session implements stateless, cookie-backed login sessions.
//
// After a successful login the caller hands a Manager the user and session
// records (Data). Issue writes up to three cookies:
//
//   - the session token, signed as token "." hex(HMAC-SHA256);
//   - a signed "do-not-remember" marker when the user opted out of a
//     persistent login;
//   - a cached-data cookie holding {user, session} plus an expiry, signed
//     over the canonical JSON form and base64url encoded.
//
// Names follow [__Secure-]<prefix>.<name>, for example
// "__Secure-snippets.session_token". The Secure attribute of every cookie is
// derived from whether its name carries the "__Secure-" prefix.
//
// # Remember me
//
// Issue takes a Remember value. RememberOn and RememberOff are explicit
// choices; RememberUnset reuses the marker cookie from a previous login.
// A remembered token cookie lives for TokenMaxAge (7 days by default);
// otherwise it is a browser-session cookie and the marker is written for
// MarkerMaxAge.
//
// # Reading
//
// Read and ReadHeader walk the states
//
//	NoSession -> TokenOnly -> Cached -> Expired (cleared) -> TokenOnly
//
// A missing or forged token is ErrSessionNotFound. A valid token with a
// missing, forged or stale cached-data cookie is ErrNoCachedSession; the
// caller is expected to load the session from its store by Token and call
// SetCachedData. Stale cached data is cleared with Max-Age=0 on the way out.
//
//	manager, err := session.New(secret, session.WithSecureCookies(true))
//	if err != nil {
//		return err
//	}
//
//	// login
//	err = manager.Issue(w, r, session.Data{User: u, Session: s}, session.RememberFrom(input.RememberMe))
//
//	// any later request
//	data, err := manager.Read(w, r)
//	switch {
//	case errors.Is(err, session.ErrSessionNotFound):
//		// anonymous
//	case errors.Is(err, session.ErrNoCachedSession):
//		token, _ := manager.Token(r)
//		// look the token up in the store, then manager.SetCachedData(w, data)
//	}
//
// The encoded cached-data value is limited to MaxPayloadSize bytes; larger
// payloads fail with ErrPayloadTooLarge rather than being truncated by the
// browser.
package session
