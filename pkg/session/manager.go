package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/snippets/pkg/cookie"
	"github.com/dmitrymomot/snippets/pkg/signer"
)

const doNotRememberValue = "true"

// Manager issues and reads the session cookies. It holds no per-request
// state and is safe for concurrent use.
type Manager struct {
	config  Config
	names   Names
	cookies *cookie.Manager
	now     func() time.Time
}

// New creates a session manager signing with secret.
func New(secret string, opts ...Option) (*Manager, error) {
	m := &Manager{
		config: DefaultConfig(),
		now:    time.Now,
	}
	m.config.Secret = secret

	for _, opt := range opts {
		opt(m)
	}

	if err := m.config.validate(); err != nil {
		return nil, err
	}

	cookieCfg := m.config.Cookie
	if cookieCfg == (cookie.Config{}) {
		cookieCfg = cookie.DefaultConfig()
	}
	cookieCfg.Secret = m.config.Secret
	cookies, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return nil, err
	}

	m.cookies = cookies
	m.names = NewNames(m.config.CookiePrefix, m.config.SecureCookies)

	return m, nil
}

// Names returns the cookie names in use.
func (m *Manager) Names() Names {
	return m.names
}

// IssueHeaders returns the Set-Cookie values for a fresh login. cookieHeader
// is the incoming Cookie header, consulted for the do-not-remember marker
// when remember is RememberUnset.
func (m *Manager) IssueHeaders(cookieHeader string, data Data, remember Remember) ([]string, error) {
	if data.Session.Token == "" {
		return nil, ErrEmptyToken
	}

	doNotRemember := remember == RememberOff
	if remember == RememberUnset {
		v, err := m.cookies.LookupSigned(cookieHeader, m.names.DoNotRemember)
		doNotRemember = err == nil && v == doNotRememberValue
	}

	headers := make([]string, 0, 3)

	tokenOpts := []cookie.Option{cookie.WithSecure(secureName(m.names.Token))}
	if doNotRemember {
		tokenOpts = append(tokenOpts, cookie.WithoutMaxAge())
	} else {
		tokenOpts = append(tokenOpts, cookie.WithMaxAge(seconds(m.config.TokenMaxAge)))
	}

	h, err := m.cookies.SignedHeader(m.names.Token, data.Session.Token, tokenOpts...)
	if err != nil {
		return nil, err
	}
	headers = append(headers, h)

	if doNotRemember {
		h, err := m.cookies.SignedHeader(m.names.DoNotRemember, doNotRememberValue,
			cookie.WithSecure(secureName(m.names.DoNotRemember)),
			cookie.WithMaxAge(seconds(m.config.MarkerMaxAge)),
		)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}

	h, err = m.cachedDataHeader(data)
	if err != nil {
		return nil, err
	}

	return append(headers, h), nil
}

// Issue writes the session cookies for data to w.
func (m *Manager) Issue(w http.ResponseWriter, r *http.Request, data Data, remember Remember) error {
	headers, err := m.IssueHeaders(cookie.RequestHeader(r), data, remember)
	if err != nil {
		return err
	}
	addSetCookies(w, headers)
	return nil
}

// SetCachedData refreshes only the cached-data cookie, e.g. after the
// caller reloaded the session from its store.
func (m *Manager) SetCachedData(w http.ResponseWriter, data Data) error {
	h, err := m.cachedDataHeader(data)
	if err != nil {
		return err
	}
	w.Header().Add("Set-Cookie", h)
	return nil
}

// ReadHeader reconstructs session state from a Cookie header. The returned
// error is reserved for cookie policy violations; every outcome driven by
// client input is reported through ReadResult.State.
func (m *Manager) ReadHeader(cookieHeader string) (ReadResult, error) {
	token, err := m.cookies.LookupSigned(cookieHeader, m.names.Token)
	if err != nil || token == "" {
		return ReadResult{State: StateNoSession}, nil
	}

	res := ReadResult{State: StateTokenOnly, Token: token}

	raw, err := m.cookies.Lookup(cookieHeader, m.names.Data)
	if err != nil {
		return res, nil
	}

	data, expiresAt, ok := m.decodeCached(raw)
	if !ok || !signer.EqualString(data.Session.Token, token) {
		return res, nil
	}

	now := m.now()
	if now.Before(expiresAt) && !data.Session.IsExpired(now) {
		res.State = StateCached
		res.Data = data
		return res, nil
	}

	cleared, err := m.cookies.ClearHeader(m.names.Data, cookie.WithSecure(secureName(m.names.Data)))
	if err != nil {
		return ReadResult{}, err
	}
	res.State = StateExpired
	res.SetCookies = []string{cleared}
	return res, nil
}

// Read returns the cached session data for r. It fails with
// ErrSessionNotFound without a valid token, and with ErrNoCachedSession when
// the token is valid but the cache cannot be used. Clearing cookies are
// written to w as needed. Behind Middleware the earlier outcome is reused.
func (m *Manager) Read(w http.ResponseWriter, r *http.Request) (*Data, error) {
	if o, ok := readOutcomeFrom(r.Context()); ok {
		return o.data, o.err
	}

	res, err := m.ReadHeader(cookie.RequestHeader(r))
	if err != nil {
		return nil, err
	}
	addSetCookies(w, res.SetCookies)

	switch res.State {
	case StateCached:
		return res.Data, nil
	case StateNoSession:
		return nil, ErrSessionNotFound
	default:
		return nil, ErrNoCachedSession
	}
}

// Token returns the verified session token from r.
func (m *Manager) Token(r *http.Request) (string, error) {
	token, err := m.cookies.GetSigned(r, m.names.Token)
	if err != nil || token == "" {
		return "", ErrSessionNotFound
	}
	return token, nil
}

// Clear expires all session cookies.
func (m *Manager) Clear(w http.ResponseWriter) error {
	var errs []error
	for _, name := range []string{m.names.Token, m.names.DoNotRemember, m.names.Data} {
		if err := m.cookies.Clear(w, name, cookie.WithSecure(secureName(name))); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) cachedDataHeader(data Data) (string, error) {
	value, err := m.encodeCached(data, m.now().Add(m.config.DataMaxAge))
	if err != nil {
		return "", err
	}
	return m.cookies.Header(m.names.Data, value,
		cookie.WithSecure(secureName(m.names.Data)),
		cookie.WithMaxAge(seconds(m.config.DataMaxAge)),
	)
}

func addSetCookies(w http.ResponseWriter, headers []string) {
	for _, h := range headers {
		w.Header().Add("Set-Cookie", h)
	}
}

func seconds(d time.Duration) int {
	return int(d / time.Second)
}
