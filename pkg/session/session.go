package session

import (
	"time"

	"github.com/google/uuid"
)

// User is the account snapshot carried in the cached-data cookie.
type User struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	ImageURL        *string   `json:"imageUrl"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Session is a server-side login record identified by its random token.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"userId"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsExpired reports whether the session ended at or before now.
func (s *Session) IsExpired(now time.Time) bool {
	return s == nil || !now.Before(s.ExpiresAt)
}

// Data is the user/session pair handed over after a successful login.
type Data struct {
	User    User    `json:"user"`
	Session Session `json:"session"`
}

// Remember is the caller's "remember me" choice for Issue.
type Remember int

const (
	// RememberUnset defers to the do-not-remember marker cookie.
	RememberUnset Remember = iota
	RememberOn
	RememberOff
)

// RememberFrom maps an optional boolean onto Remember.
func RememberFrom(v *bool) Remember {
	switch {
	case v == nil:
		return RememberUnset
	case *v:
		return RememberOn
	default:
		return RememberOff
	}
}

// State describes what Read found in the request cookies.
type State int

const (
	// StateNoSession means there is no valid session-token cookie.
	StateNoSession State = iota
	// StateTokenOnly means the token is valid but there is no usable cached data.
	StateTokenOnly
	// StateCached means cached data was verified and is still fresh.
	StateCached
	// StateExpired means cached data was found past its expiry and is being cleared.
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateNoSession:
		return "no_session"
	case StateTokenOnly:
		return "token_only"
	case StateCached:
		return "cached"
	case StateExpired:
		return "expired"
	}
	return "unknown"
}

// ReadResult is the outcome of ReadHeader.
type ReadResult struct {
	State State
	// Token is the verified session token; empty for StateNoSession.
	Token string
	// Data is set only for StateCached.
	Data *Data
	// SetCookies lists Set-Cookie values the caller must write to the response.
	SetCookies []string
}
