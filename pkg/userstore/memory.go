package userstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/snippets/pkg/auth"
	"github.com/dmitrymomot/snippets/pkg/session"
)

// Memory is an in-process auth.Store. Returned values are copies.
type Memory struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]*session.User
	byEmail   map[string]uuid.UUID
	passwords map[uuid.UUID]string
	sessions  map[string]*session.Session
	now       func() time.Time
	ticker    *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithMemoryClock overrides the time source used for timestamps and cleanup.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		if now != nil {
			m.now = now
		}
	}
}

// WithCleanupInterval starts a goroutine that drops expired sessions every
// interval. Call Close to stop it.
func WithCleanupInterval(interval time.Duration) MemoryOption {
	return func(m *Memory) {
		if interval > 0 {
			m.ticker = time.NewTicker(interval)
		}
	}
}

// NewMemory creates an empty Memory store.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		users:     make(map[uuid.UUID]*session.User),
		byEmail:   make(map[string]uuid.UUID),
		passwords: make(map[uuid.UUID]string),
		sessions:  make(map[string]*session.Session),
		now:       time.Now,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.ticker != nil {
		go m.cleanupLoop(m.ticker)
	}
	return m
}

func (m *Memory) FindUserByEmail(_ context.Context, email string) (*session.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	u := *m.users[id]
	return &u, nil
}

func (m *Memory) FindUserByID(_ context.Context, id uuid.UUID) (*session.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (m *Memory) FindPasswordHash(_ context.Context, userID uuid.UUID) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hash, ok := m.passwords[userID]
	if !ok {
		return "", auth.ErrPasswordNotFound
	}
	return hash, nil
}

func (m *Memory) CreateUser(_ context.Context, email, passwordHash string) (*session.User, error) {
	email = normalizeEmail(email)
	if email == "" || passwordHash == "" {
		return nil, ErrInvalidInput
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[email]; exists {
		return nil, auth.ErrEmailAlreadyExists
	}

	now := m.now().UTC()
	user := &session.User{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.users[user.ID] = user
	m.byEmail[email] = user.ID
	m.passwords[user.ID] = passwordHash

	u := *user
	return &u, nil
}

func (m *Memory) MarkEmailVerified(_ context.Context, email string) (*session.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	user := m.users[id]
	user.IsEmailVerified = true
	user.UpdatedAt = m.now().UTC()

	u := *user
	return &u, nil
}

func (m *Memory) CreateSession(_ context.Context, params auth.CreateSessionParams) (*session.Session, error) {
	if params.Token == "" || params.UserID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[params.UserID]; !ok {
		return nil, auth.ErrUserNotFound
	}

	now := m.now().UTC()
	sess := &session.Session{
		ID:        uuid.New(),
		Token:     params.Token,
		UserID:    params.UserID,
		IPAddress: params.IPAddress,
		UserAgent: params.UserAgent,
		ExpiresAt: params.ExpiresAt.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.sessions[sess.Token] = sess

	s := *sess
	return &s, nil
}

// FindSessionByToken returns the stored session even when it has expired;
// expiry is the caller's decision.
func (m *Memory) FindSessionByToken(_ context.Context, token string) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[token]
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	s := *sess
	return &s, nil
}

func (m *Memory) DeleteSessionByToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}

// DeleteExpiredSessions removes sessions that ended before now and reports
// how many were dropped.
func (m *Memory) DeleteExpiredSessions(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	n := 0
	for token, sess := range m.sessions {
		if sess.IsExpired(now) {
			delete(m.sessions, token)
			n++
		}
	}
	return n, nil
}

// Close stops the cleanup goroutine.
func (m *Memory) Close() error {
	m.closeOnce.Do(func() {
		if m.ticker != nil {
			m.ticker.Stop()
		}
		close(m.done)
	})
	return nil
}

func (m *Memory) cleanupLoop(ticker *time.Ticker) {
	for {
		select {
		case <-ticker.C:
			_, _ = m.DeleteExpiredSessions(context.Background())
		case <-m.done:
			return
		}
	}
}
