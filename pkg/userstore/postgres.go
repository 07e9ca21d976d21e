package userstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/snippets/pkg/auth"
	"github.com/dmitrymomot/snippets/pkg/pg"
	"github.com/dmitrymomot/snippets/pkg/session"
)

// DB is the subset of *pgxpool.Pool used by Postgres.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Postgres is an auth.Store backed by the users, passwords and sessions
// tables created by Migrations.
type Postgres struct {
	db DB
}

// NewPostgres creates a Postgres store.
func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db}
}

const userColumns = `id, email, image_url, is_email_verified, created_at, updated_at`

const sessionColumns = `id, token, user_id, ip_address, user_agent, expires_at, created_at, updated_at`

func scanUser(row pgx.Row) (*session.User, error) {
	var u session.User
	if err := row.Scan(&u.ID, &u.Email, &u.ImageURL, &u.IsEmailVerified, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func scanSession(row pgx.Row) (*session.Session, error) {
	var s session.Session
	if err := row.Scan(&s.ID, &s.Token, &s.UserID, &s.IPAddress, &s.UserAgent, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (p *Postgres) FindUserByEmail(ctx context.Context, email string) (*session.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, normalizeEmail(email)))
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return u, nil
}

func (p *Postgres) FindUserByID(ctx context.Context, id uuid.UUID) (*session.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return u, nil
}

func (p *Postgres) FindPasswordHash(ctx context.Context, userID uuid.UUID) (string, error) {
	var hash string
	err := p.db.QueryRow(ctx, `SELECT hash FROM passwords WHERE user_id = $1`, userID).Scan(&hash)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return "", auth.ErrPasswordNotFound
		}
		return "", fmt.Errorf("failed to find password: %w", err)
	}
	return hash, nil
}

// CreateUser inserts the user row and its password row in one transaction.
func (p *Postgres) CreateUser(ctx context.Context, email, passwordHash string) (*session.User, error) {
	email = normalizeEmail(email)
	if email == "" || passwordHash == "" {
		return nil, ErrInvalidInput
	}

	var user *session.User
	err := pgx.BeginFunc(ctx, p.db, func(tx pgx.Tx) error {
		u, err := scanUser(tx.QueryRow(ctx,
			`INSERT INTO users (email) VALUES ($1) RETURNING `+userColumns, email))
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO passwords (hash, user_id) VALUES ($1, $2)`, passwordHash, u.ID); err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return nil, auth.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (p *Postgres) MarkEmailVerified(ctx context.Context, email string) (*session.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx,
		`UPDATE users SET is_email_verified = TRUE, updated_at = now()
		WHERE email = $1 RETURNING `+userColumns, normalizeEmail(email)))
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify email: %w", err)
	}
	return u, nil
}

func (p *Postgres) CreateSession(ctx context.Context, params auth.CreateSessionParams) (*session.Session, error) {
	if params.Token == "" || params.UserID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	s, err := scanSession(p.db.QueryRow(ctx,
		`INSERT INTO sessions (token, user_id, ip_address, user_agent, expires_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING `+sessionColumns,
		params.Token, params.UserID, params.IPAddress, params.UserAgent, params.ExpiresAt.UTC()))
	if err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return s, nil
}

func (p *Postgres) FindSessionByToken(ctx context.Context, token string) (*session.Session, error) {
	s, err := scanSession(p.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE token = $1`, token))
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, auth.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return s, nil
}

func (p *Postgres) DeleteSessionByToken(ctx context.Context, token string) error {
	if _, err := p.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes sessions that have ended and reports how
// many rows were deleted.
func (p *Postgres) DeleteExpiredSessions(ctx context.Context) (int, error) {
	tag, err := p.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
