package cookie

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/snippets/pkg/signer"
)

// Manager reads and writes cookies with shared default attributes and
// HMAC-signed values.
type Manager struct {
	signer   *signer.Signer
	defaults Options
}

// New creates a manager. Defaults are Path=/, HttpOnly and SameSite=Lax,
// overridable through opts.
func New(secret string, opts ...Option) (*Manager, error) {
	s, err := signer.New(secret)
	if err != nil {
		return nil, errors.Join(ErrSecretTooShort, err)
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		signer:   s,
		defaults: applyOptions(defaults, opts),
	}, nil
}

// Header returns the Set-Cookie value for name and value.
func (m *Manager) Header(name, value string, opts ...Option) (string, error) {
	return Serialize(name, value, applyOptions(m.defaults, opts))
}

// SignedHeader is Header for a signed value.
func (m *Manager) SignedHeader(name, value string, opts ...Option) (string, error) {
	return m.Header(name, m.signer.SignValue(value), opts...)
}

// ClearHeader returns a Set-Cookie value that expires name immediately.
func (m *Manager) ClearHeader(name string, opts ...Option) (string, error) {
	return m.Header(name, "", append(opts[:len(opts):len(opts)], WithMaxAge(0))...)
}

// Lookup finds name in a raw Cookie header.
func (m *Manager) Lookup(header, name string) (string, error) {
	value, ok := ParseOne(header, name).Get(name)
	if !ok {
		return "", ErrCookieNotFound
	}
	return value, nil
}

// LookupSigned finds name in a raw Cookie header and verifies its signature.
func (m *Manager) LookupSigned(header, name string) (string, error) {
	signed, err := m.Lookup(header, name)
	if err != nil {
		return "", err
	}
	return m.unsign(signed)
}

func (m *Manager) unsign(signed string) (string, error) {
	value, ok := m.signer.UnsignValue(signed)
	if !ok {
		return "", ErrInvalidSignature
	}
	return value, nil
}

// Sign returns the hex HMAC of message under the manager's secret.
func (m *Manager) Sign(message string) string {
	return m.signer.Sign(message)
}

// Verify checks a hex signature produced by Sign.
func (m *Manager) Verify(message, signature string) bool {
	return m.signer.Verify(message, signature)
}

// Set appends a Set-Cookie header to w.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	header, err := m.Header(name, value, opts...)
	if err != nil {
		return err
	}
	w.Header().Add("Set-Cookie", header)
	return nil
}

// Clear writes an empty value with Max-Age=0.
func (m *Manager) Clear(w http.ResponseWriter, name string, opts ...Option) error {
	return m.Set(w, name, "", append(opts[:len(opts):len(opts)], WithMaxAge(0))...)
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	return m.Lookup(RequestHeader(r), name)
}

// GetSigned is Get followed by signature verification.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.unsign(signed)
}

// RequestHeader joins all Cookie headers of r into one.
func RequestHeader(r *http.Request) string {
	return strings.Join(r.Header.Values("Cookie"), "; ")
}
