// Package auth implements email and password authentication on top of the
// signed-cookie sessions of package session.
//
// A Service ties together a Store, the session Manager, the scrypt password
// Hasher, a JWT service for email-verification tokens and a Mailer:
//
//	svc, err := auth.NewService(store, sessions, hasher, tokens, mailer,
//		auth.WithConfig(cfg),
//		auth.WithLogger(log),
//	)
//	router.Mount("/api/v1/auth", auth.NewHandler(svc).Routes())
//
// Register creates an unverified user and mails a 15 minute verification
// token in the background; call Wait before shutdown to let deliveries
// finish. Login rejects unknown emails and wrong passwords with the same
// ErrInvalidCredentials and spends a password hash on both paths. A
// successful login stores a session with a random 32 character token and
// issues the session cookies; the session lasts one day when the user
// opted out of "remember me" and seven days otherwise.
//
// CurrentSession answers from the cached-data cookie when it is fresh and
// falls back to the Store otherwise, refilling the cookie. Sessions past
// their expiry clear every session cookie.
//
// Handler exposes the flows as JSON endpoints:
//
//	POST /register
//	POST /login
//	GET  /email-verification?token=...
//	GET  /session
//	POST /logout
package auth
