package auth_test

import (
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/snippets/pkg/auth"
	"github.com/dmitrymomot/snippets/pkg/jwt"
	"github.com/dmitrymomot/snippets/pkg/password"
	"github.com/dmitrymomot/snippets/pkg/session"
	"github.com/dmitrymomot/snippets/pkg/userstore"
)

const (
	sessionSecret = "test-session-secret"
	jwtSecret     = "test-jwt-secret"
	validPassword = "Str0ng!Passw0rd"
)

var baseTime = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type testEnv struct {
	svc      *auth.Service
	sessions *session.Manager
	store    auth.Store
	mem      *userstore.Memory
	mailer   *MockMailer
	tokens   *jwt.Service
	clock    *clock
}

func newEnv(t *testing.T, store auth.Store, opts ...auth.Option) *testEnv {
	t.Helper()

	c := &clock{t: baseTime}

	env := &testEnv{mailer: &MockMailer{}, clock: c}
	if store == nil {
		env.mem = userstore.NewMemory(userstore.WithMemoryClock(c.now))
		store = env.mem
	}
	env.store = store

	sessions, err := session.New(sessionSecret, session.WithClock(c.now))
	require.NoError(t, err)
	env.sessions = sessions

	hasher, err := password.NewHasher(password.WithParams(password.Params{N: 1024, R: 8, P: 1, KeyLen: 64, SaltLen: 16}))
	require.NoError(t, err)

	env.tokens, err = jwt.NewFromString(jwtSecret, jwt.WithClock(c.now))
	require.NoError(t, err)

	env.svc, err = auth.NewService(store, sessions, hasher, env.tokens, env.mailer,
		append([]auth.Option{auth.WithClock(c.now)}, opts...)...)
	require.NoError(t, err)

	return env
}

// expectVerificationEmail registers a mailer expectation for email and
// returns a function yielding the sent token once the service is drained.
func (e *testEnv) expectVerificationEmail(email string) func() string {
	var token string
	e.mailer.On("SendEmailVerification", mock.Anything, email, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { token = args.String(2) }).
		Return(nil).Once()
	return func() string {
		e.svc.Wait()
		return token
	}
}

// jar carries cookies from responses into follow-up requests.
type jar struct {
	cookies map[string]string
}

func newJar() *jar {
	return &jar{cookies: make(map[string]string)}
}

func (j *jar) update(h http.Header) {
	for _, sc := range h.Values("Set-Cookie") {
		pair, attrs, _ := strings.Cut(sc, ";")
		name, value, _ := strings.Cut(pair, "=")
		if strings.Contains(attrs, "Max-Age=0") {
			delete(j.cookies, name)
			continue
		}
		j.cookies[name] = value
	}
}

func (j *jar) apply(r *http.Request) {
	parts := make([]string, 0, len(j.cookies))
	for name, value := range j.cookies {
		parts = append(parts, name+"="+value)
	}
	if len(parts) > 0 {
		r.Header.Set("Cookie", strings.Join(parts, "; "))
	}
}

func (j *jar) has(name string) bool {
	_, ok := j.cookies[name]
	return ok
}
