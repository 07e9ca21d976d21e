package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/snippets/pkg/session"
)

// Store persists users, password hashes and sessions.
//
// Lookups return ErrUserNotFound, ErrPasswordNotFound or ErrSessionNotFound
// when nothing matches. Emails are stored and looked up in lower case.
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*session.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*session.User, error)
	FindPasswordHash(ctx context.Context, userID uuid.UUID) (string, error)
	// CreateUser inserts the user and its password hash atomically and
	// returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, email, passwordHash string) (*session.User, error)
	MarkEmailVerified(ctx context.Context, email string) (*session.User, error)
	CreateSession(ctx context.Context, params CreateSessionParams) (*session.Session, error)
	FindSessionByToken(ctx context.Context, token string) (*session.Session, error)
	DeleteSessionByToken(ctx context.Context, token string) error
}

// CreateSessionParams are the caller supplied columns of a new session.
type CreateSessionParams struct {
	Token     string
	UserID    uuid.UUID
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
}

// Mailer delivers the email-verification message.
type Mailer interface {
	SendEmailVerification(ctx context.Context, email, token string) error
}
