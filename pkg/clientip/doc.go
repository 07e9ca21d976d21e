// Package clientip resolves the originating client address of an HTTP
// request served behind reverse proxies.
//
// GetIP walks Headers in order (Cloudflare, DigitalOcean, X-Forwarded-For,
// X-Client-IP, X-Real-IP) and returns the first valid address, falling back
// to RemoteAddr. IPv4-mapped IPv6 addresses are unmapped and zoned addresses
// are rejected. An empty string means no valid address was found.
//
// Middleware stores the result in the request context; the auth handlers read
// it with FromRequest when recording a new session.
package clientip
