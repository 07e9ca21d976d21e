package session_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/snippets/pkg/codec"
	"github.com/dmitrymomot/snippets/pkg/cookie"
	"github.com/dmitrymomot/snippets/pkg/session"
)

const testSecret = "test-secret-key-long-enough"

var baseTime = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func setupManager(t *testing.T, opts ...session.Option) (*session.Manager, *clock) {
	t.Helper()

	c := &clock{t: baseTime}
	m, err := session.New(testSecret, append([]session.Option{session.WithClock(c.now)}, opts...)...)
	require.NoError(t, err)
	return m, c
}

func testData() session.Data {
	userID := uuid.New()
	return session.Data{
		User: session.User{
			ID:              userID,
			Email:           "user@example.com",
			IsEmailVerified: true,
			CreatedAt:       baseTime.Add(-48 * time.Hour),
			UpdatedAt:       baseTime.Add(-24 * time.Hour),
		},
		Session: session.Session{
			ID:        uuid.New(),
			Token:     "Qx3b9Kd0aZ7yLmN2pR5sT8uV1wX4yZ6c",
			UserID:    userID,
			IPAddress: "203.0.113.7",
			UserAgent: "test-agent/1.0",
			ExpiresAt: baseTime.Add(7 * 24 * time.Hour),
			CreatedAt: baseTime,
			UpdatedAt: baseTime,
		},
	}
}

// requestCookies turns Set-Cookie values into a Cookie request header,
// dropping cookies that are being cleared.
func requestCookies(setCookies []string) string {
	pairs := make([]string, 0, len(setCookies))
	for _, sc := range setCookies {
		if strings.Contains(sc, "; Max-Age=0") {
			continue
		}
		pair, _, _ := strings.Cut(sc, "; ")
		pairs = append(pairs, pair)
	}
	return strings.Join(pairs, "; ")
}

func findHeader(t *testing.T, headers []string, name string) string {
	t.Helper()
	for _, h := range headers {
		if strings.HasPrefix(h, name+"=") {
			return h
		}
	}
	t.Fatalf("no Set-Cookie for %s in %v", name, headers)
	return ""
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := session.New("short")
	require.ErrorIs(t, err, cookie.ErrSecretTooShort)

	m, err := session.New(testSecret)
	require.NoError(t, err)
	assert.Equal(t, "snippets.session_token", m.Names().Token)
}

func TestNewNames(t *testing.T) {
	t.Parallel()

	plain := session.NewNames("snippets", false)
	assert.Equal(t, session.Names{
		Token:         "snippets.session_token",
		Data:          "snippets.session_data",
		DoNotRemember: "snippets.do_not_remember",
	}, plain)

	secure := session.NewNames("snippets", true)
	assert.Equal(t, "__Secure-snippets.session_token", secure.Token)
	assert.Equal(t, "__Secure-snippets.session_data", secure.Data)
	assert.Equal(t, "__Secure-snippets.do_not_remember", secure.DoNotRemember)

	assert.Equal(t, "session_token", session.NewNames("", false).Token)
}

func TestManager_IssueHeaders_RememberOn(t *testing.T) {
	t.Parallel()

	m, _ := setupManager(t)
	data := testData()

	headers, err := m.IssueHeaders("", data, session.RememberOn)
	require.NoError(t, err)
	require.Len(t, headers, 2)

	token := findHeader(t, headers, m.Names().Token)
	assert.True(t, strings.HasPrefix(token, m.Names().Token+"="+data.Session.Token+"."))
	assert.Contains(t, token, "; Max-Age=604800; Path=/; HttpOnly; SameSite=Lax")
	assert.NotContains(t, token, "Secure")

	cached := findHeader(t, headers, m.Names().Data)
	assert.Contains(t, cached, "; Max-Age=300; Path=/; HttpOnly; SameSite=Lax")
}

func TestManager_IssueHeaders_RememberOff(t *testing.T) {
	t.Parallel()

	m, _ := setupManager(t)

	headers, err := m.IssueHeaders("", testData(), session.RememberOff)
	require.NoError(t, err)
	require.Len(t, headers, 3)

	token := findHeader(t, headers, m.Names().Token)
	assert.NotContains(t, token, "Max-Age")

	marker := findHeader(t, headers, m.Names().DoNotRemember)
	assert.True(t, strings.HasPrefix(marker, m.Names().DoNotRemember+"=true."))
	assert.Contains(t, marker, "Max-Age=604800")
}

func TestManager_IssueHeaders_RememberUnset(t *testing.T) {
	t.Parallel()

	m, _ := setupManager(t)
	data := testData()

	t.Run("no marker means remember", func(t *testing.T) {
		t.Parallel()

		headers, err := m.IssueHeaders("", data, session.RememberUnset)
		require.NoError(t, err)
		assert.Len(t, headers, 2)
		assert.Contains(t, findHeader(t, headers, m.Names().Token), "Max-Age=604800")
	})

	t.Run("signed marker is honoured", func(t *testing.T) {
		t.Parallel()

		first, err := m.IssueHeaders("", data, session.RememberOff)
		require.NoError(t, err)

		headers, err := m.IssueHeaders(requestCookies(first), data, session.RememberUnset)
		require.NoError(t, err)
		require.Len(t, headers, 3)
		assert.NotContains(t, findHeader(t, headers, m.Names().Token), "Max-Age")
	})

	t.Run("explicit choice wins over marker", func(t *testing.T) {
		t.Parallel()

		first, err := m.IssueHeaders("", data, session.RememberOff)
		require.NoError(t, err)

		headers, err := m.IssueHeaders(requestCookies(first), data, session.RememberOn)
		require.NoError(t, err)
		assert.Len(t, headers, 2)
	})

	t.Run("forged marker is ignored", func(t *testing.T) {
		t.Parallel()

		header := m.Names().DoNotRemember + "=true.deadbeef"
		headers, err := m.IssueHeaders(header, data, session.RememberUnset)
		require.NoError(t, err)
		assert.Len(t, headers, 2)
	})
}

func TestManager_IssueHeaders_Secure(t *testing.T) {
	t.Parallel()

	m, _ := setupManager(t, session.WithSecureCookies(true))
	require.Equal(t, "__Secure-snippets.session_token", m.Names().Token)

	headers, err := m.IssueHeaders("", testData(), session.RememberOff)
	require.NoError(t, err)
	require.Len(t, headers, 3)
	for _, h := range headers {
		assert.True(t, strings.HasPrefix(h, cookie.SecurePrefix), h)
		assert.Contains(t, h, "; Secure")
	}
}

func TestManager_IssueHeaders_Errors(t *testing.T) {
	t.Parallel()

	m, _ := setupManager(t)

	data := testData()
	data.Session.Token = ""
	_, err := m.IssueHeaders("", data, session.RememberOn)
	require.ErrorIs(t, err, session.ErrEmptyToken)

	data = testData()
	data.User.Email = strings.Repeat("a", 5000) + "@example.com"
	_, err = m.IssueHeaders("", data, session.RememberOn)
	require.ErrorIs(t, err, session.ErrPayloadTooLarge)
}

func TestNew_RejectsMaxAges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*session.Config)
	}{
		{"token beyond 400 days", func(c *session.Config) { c.TokenMaxAge = 401 * 24 * time.Hour }},
		{"zero token", func(c *session.Config) { c.TokenMaxAge = 0 }},
		{"zero data", func(c *session.Config) { c.DataMaxAge = 0 }},
		{"negative data", func(c *session.Config) { c.DataMaxAge = -time.Minute }},
		{"sub-second data", func(c *session.Config) { c.DataMaxAge = 500 * time.Millisecond }},
		{"marker beyond 400 days", func(c *session.Config) { c.MarkerMaxAge = 500 * 24 * time.Hour }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := session.DefaultConfig()
			tt.modify(&cfg)
			_, err := session.New(testSecret, session.WithConfig(cfg))
			require.ErrorIs(t, err, session.ErrInvalidMaxAge)
		})
	}

	cfg := session.DefaultConfig()
	cfg.TokenMaxAge = 400 * 24 * time.Hour
	_, err := session.New(testSecret, session.WithConfig(cfg))
	require.NoError(t, err)
}

func TestManager_CachedPayloadFormat(t *testing.T) {
	t.Parallel()

	m, _ := setupManager(t)

	headers, err := m.IssueHeaders("", testData(), session.RememberOn)
	require.NoError(t, err)

	cached := findHeader(t, headers, m.Names().Data)
	pair, _, _ := strings.Cut(cached, "; ")
	_, value, _ := strings.Cut(pair, "=")

	assert.LessOrEqual(t, len(value), session.MaxPayloadSize)
	assert.NotContains(t, value, "=")

	raw, err := codec.DecodeBase64URL(value)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":{"user":`)
	assert.Contains(t, string(raw), `"expiresAt":`+strconv.FormatInt(baseTime.Add(5*time.Minute).UnixMilli(), 10))
	assert.Contains(t, string(raw), `"signature":"`)
}

func TestManager_ReadHeader_CacheHit(t *testing.T) {
	t.Parallel()

	m, c := setupManager(t)
	data := testData()

	headers, err := m.IssueHeaders("", data, session.RememberOff)
	require.NoError(t, err)

	c.t = baseTime.Add(4 * time.Minute)

	res, err := m.ReadHeader(requestCookies(headers))
	require.NoError(t, err)
	assert.Equal(t, session.StateCached, res.State)
	assert.Equal(t, data.Session.Token, res.Token)
	assert.Empty(t, res.SetCookies)
	require.NotNil(t, res.Data)
	assert.Equal(t, data, *res.Data)
}

func TestManager_ReadHeader_CacheExpired(t *testing.T) {
	t.Parallel()

	m, c := setupManager(t)

	headers, err := m.IssueHeaders("", testData(), session.RememberOn)
	require.NoError(t, err)

	c.t = baseTime.Add(5 * time.Minute)

	res, err := m.ReadHeader(requestCookies(headers))
	require.NoError(t, err)
	assert.Equal(t, session.StateExpired, res.State)
	assert.Nil(t, res.Data)
	assert.NotEmpty(t, res.Token)
	require.Len(t, res.SetCookies, 1)
	assert.Equal(t, m.Names().Data+"=; Max-Age=0; Path=/; HttpOnly; SameSite=Lax", res.SetCookies[0])
}

func TestManager_ReadHeader_SessionExpired(t *testing.T) {
	t.Parallel()

	m, _ := setupManager(t)
	data := testData()
	data.Session.ExpiresAt = baseTime.Add(-time.Second)

	headers, err := m.IssueHeaders("", data, session.RememberOn)
	require.NoError(t, err)

	res, err := m.ReadHeader(requestCookies(headers))
	require.NoError(t, err)
	assert.Equal(t, session.StateExpired, res.State)
	assert.Len(t, res.SetCookies, 1)
}

func TestManager_ReadHeader_Misses(t *testing.T) {
	t.Parallel()

	m, _ := setupManager(t)
	data := testData()

	headers, err := m.IssueHeaders("", data, session.RememberOn)
	require.NoError(t, err)
	tokenPair, _, _ := strings.Cut(findHeader(t, headers, m.Names().Token), "; ")
	dataPair, _, _ := strings.Cut(findHeader(t, headers, m.Names().Data), "; ")

	tests := []struct {
		name   string
		header string
		state  session.State
	}{
		{"empty header", "", session.StateNoSession},
		{"only cached data", dataPair, session.StateNoSession},
		{"unsigned token", m.Names().Token + "=" + data.Session.Token, session.StateNoSession},
		{"forged token", m.Names().Token + "=other." + strings.Repeat("0", 64), session.StateNoSession},
		{"token only", tokenPair, session.StateTokenOnly},
		{"garbage data", tokenPair + "; " + m.Names().Data + "=!!!", session.StateTokenOnly},
		{"tampered data", tokenPair + "; " + tamper(dataPair), session.StateTokenOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := m.ReadHeader(tt.header)
			require.NoError(t, err)
			assert.Equal(t, tt.state, res.State)
			assert.Nil(t, res.Data)
			assert.Empty(t, res.SetCookies)
		})
	}
}

// tamper flips one character in the middle of the cookie value.
func tamper(pair string) string {
	name, value, _ := strings.Cut(pair, "=")
	b := []byte(value)
	i := len(b) / 2
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return name + "=" + string(b)
}

func TestManager_ReadHeader_DataFromOtherSession(t *testing.T) {
	t.Parallel()

	m, _ := setupManager(t)

	alice := testData()
	bob := testData()
	bob.User.Email = "bob@example.com"
	bob.Session.Token = "Bb7c2Kd0aZ7yLmN2pR5sT8uV1wX4yZ6c"

	aliceHeaders, err := m.IssueHeaders("", alice, session.RememberOn)
	require.NoError(t, err)
	bobHeaders, err := m.IssueHeaders("", bob, session.RememberOn)
	require.NoError(t, err)

	tokenPair, _, _ := strings.Cut(findHeader(t, aliceHeaders, m.Names().Token), "; ")
	dataPair, _, _ := strings.Cut(findHeader(t, bobHeaders, m.Names().Data), "; ")

	res, err := m.ReadHeader(tokenPair + "; " + dataPair)
	require.NoError(t, err)
	assert.Equal(t, session.StateTokenOnly, res.State)
	assert.Equal(t, alice.Session.Token, res.Token)
	assert.Nil(t, res.Data)
}

func TestManager_ReadHeader_OtherSecret(t *testing.T) {
	t.Parallel()

	m, _ := setupManager(t)
	headers, err := m.IssueHeaders("", testData(), session.RememberOn)
	require.NoError(t, err)

	other, err := session.New("a-completely-different-secret", session.WithClock(func() time.Time { return baseTime }))
	require.NoError(t, err)

	res, err := other.ReadHeader(requestCookies(headers))
	require.NoError(t, err)
	assert.Equal(t, session.StateNoSession, res.State)
}

func TestManager_IssueThenRead_HTTP(t *testing.T) {
	t.Parallel()

	m, c := setupManager(t)
	data := testData()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Issue(w, r, data, session.RememberOff))
	issued := w.Header().Values("Set-Cookie")
	require.Len(t, issued, 3)

	t.Run("cache hit", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/session", nil)
		r.Header.Set("Cookie", requestCookies(issued))

		got, err := m.Read(w, r)
		require.NoError(t, err)
		assert.Equal(t, data, *got)
		assert.Empty(t, w.Header().Values("Set-Cookie"))

		token, err := m.Token(r)
		require.NoError(t, err)
		assert.Equal(t, data.Session.Token, token)
	})

	t.Run("expired cache is cleared", func(t *testing.T) {
		c.t = baseTime.Add(10 * time.Minute)
		t.Cleanup(func() { c.t = baseTime })

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/session", nil)
		r.Header.Set("Cookie", requestCookies(issued))

		_, err := m.Read(w, r)
		require.ErrorIs(t, err, session.ErrNoCachedSession)

		cleared := w.Header().Values("Set-Cookie")
		require.Len(t, cleared, 1)
		assert.True(t, strings.HasPrefix(cleared[0], m.Names().Data+"=;"))
		assert.Equal(t, 1, strings.Count(cleared[0], "Max-Age=0"))
	})

	t.Run("refill cache", func(t *testing.T) {
		c.t = baseTime.Add(10 * time.Minute)
		t.Cleanup(func() { c.t = baseTime })

		w := httptest.NewRecorder()
		require.NoError(t, m.SetCachedData(w, data))

		tokenPair, _, _ := strings.Cut(findHeader(t, issued, m.Names().Token), "; ")
		header := tokenPair + "; " + requestCookies(w.Header().Values("Set-Cookie"))

		res, err := m.ReadHeader(header)
		require.NoError(t, err)
		assert.Equal(t, session.StateCached, res.State)
	})

	t.Run("no session", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/session", nil)

		_, err := m.Read(w, r)
		require.ErrorIs(t, err, session.ErrSessionNotFound)

		_, err = m.Token(r)
		require.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestManager_Clear(t *testing.T) {
	t.Parallel()

	m, _ := setupManager(t, session.WithSecureCookies(true))

	w := httptest.NewRecorder()
	require.NoError(t, m.Clear(w))

	headers := w.Header().Values("Set-Cookie")
	require.Len(t, headers, 3)
	for _, h := range headers {
		assert.Contains(t, h, "=; Max-Age=0; Path=/; HttpOnly; Secure; SameSite=Lax")
	}
}

func TestRememberFrom(t *testing.T) {
	t.Parallel()

	yes, no := true, false
	assert.Equal(t, session.RememberUnset, session.RememberFrom(nil))
	assert.Equal(t, session.RememberOn, session.RememberFrom(&yes))
	assert.Equal(t, session.RememberOff, session.RememberFrom(&no))
}
