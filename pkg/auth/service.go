package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/snippets/pkg/clientip"
	"github.com/dmitrymomot/snippets/pkg/jwt"
	"github.com/dmitrymomot/snippets/pkg/logger"
	"github.com/dmitrymomot/snippets/pkg/password"
	"github.com/dmitrymomot/snippets/pkg/random"
	"github.com/dmitrymomot/snippets/pkg/session"
	"github.com/dmitrymomot/snippets/pkg/validator"
)

// Service implements registration, login, email verification and session
// lookup on top of a Store and the signed-cookie session manager.
type Service struct {
	store    Store
	sessions *session.Manager
	hasher   *password.Hasher
	tokens   *jwt.Service
	mailer   Mailer
	random   *random.Generator
	config   Config
	logger   *slog.Logger
	now      func() time.Time
	wg       sync.WaitGroup
}

// NewService creates a Service. All collaborators are required.
func NewService(store Store, sessions *session.Manager, hasher *password.Hasher, tokens *jwt.Service, mailer Mailer, opts ...Option) (*Service, error) {
	if store == nil || sessions == nil || hasher == nil || tokens == nil || mailer == nil {
		return nil, ErrMissingDependency
	}

	s := &Service{
		store:    store,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		mailer:   mailer,
		random:   random.MustNew(random.Lower, random.Upper, random.Digit),
		config:   DefaultConfig(),
		logger:   logger.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RegisterInput is the registration request.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the email format and the password policy.
func (in RegisterInput) Validate() error {
	return validator.Apply(
		validator.Required("email", in.Email, "Email is required"),
		validator.ValidEmail("email", in.Email),
		validator.Required("password", in.Password, "Password is required"),
		validator.MinLen("password", in.Password, PasswordMinLength, "Password"),
		validator.MaxLen("password", in.Password, PasswordMaxLength, "Password"),
		validator.HasDigit("password", in.Password),
		validator.HasSpecialChar("password", in.Password),
		validator.HasLowercase("password", in.Password),
		validator.HasUppercase("password", in.Password),
	)
}

// LoginInput is the login request. RememberMe is optional; when absent the
// do-not-remember marker cookie of a previous login decides.
type LoginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe *bool  `json:"rememberMe,omitempty"`
}

// Validate checks that credentials are present and the email is well formed.
func (in LoginInput) Validate() error {
	return validator.Apply(
		validator.Required("email", in.Email, "Email is required"),
		validator.ValidEmail("email", in.Email),
		validator.Required("password", in.Password, "Password is required"),
	)
}

// Register creates an unverified user and sends the verification email in
// the background. It fails with ErrEmailAlreadyExists on a taken address.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*session.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	email := normalizeEmail(in.Email)

	if _, err := s.store.FindUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, email, hash)
	if err != nil {
		return nil, err
	}

	token, err := s.verificationToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}
	s.sendVerification(ctx, user.Email, token)

	return user, nil
}

func (s *Service) sendVerification(ctx context.Context, email, token string) {
	ctx = context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, s.config.EmailTimeout)
		defer cancel()
		if err := s.mailer.SendEmailVerification(ctx, email, token); err != nil {
			s.logger.ErrorContext(ctx, "failed to send verification email",
				logger.Status("AUTH_REGISTER_ERROR"),
				logger.Error(err),
			)
		}
	}()
}

// Wait blocks until background email deliveries have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// Login checks the credentials, stores a new session and writes the session
// cookies to w.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, in LoginInput) (*session.Data, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	email := normalizeEmail(in.Email)

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		// Keep the response time of unknown emails close to a real check.
		if _, herr := s.hasher.Hash(ctx, in.Password); herr != nil {
			return nil, fmt.Errorf("failed to hash password: %w", herr)
		}
		return nil, ErrInvalidCredentials
	}

	hash, err := s.store.FindPasswordHash(ctx, user.ID)
	if err != nil {
		if errors.Is(err, ErrPasswordNotFound) {
			s.logger.WarnContext(ctx, "user has no password",
				logger.Status("AUTH_LOGIN_ERROR"),
				logger.UserID(user.ID),
			)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load password: %w", err)
	}

	ok, err := s.hasher.Verify(ctx, hash, in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if !user.IsEmailVerified && !s.config.AllowUnverifiedEmail {
		return nil, ErrEmailNotVerified
	}

	token, err := s.random.String(s.config.SessionTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	ttl := s.config.SessionTTL
	if in.RememberMe != nil && !*in.RememberMe {
		ttl = s.config.ShortSessionTTL
	}

	sess, err := s.store.CreateSession(ctx, CreateSessionParams{
		Token:     token,
		UserID:    user.ID,
		IPAddress: clientip.FromRequest(r),
		UserAgent: r.UserAgent(),
		ExpiresAt: s.now().Add(ttl),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	data := session.Data{User: *user, Session: *sess}
	if err := s.sessions.Issue(w, r, data, session.RememberFrom(in.RememberMe)); err != nil {
		return nil, fmt.Errorf("failed to issue session cookies: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		logger.UserID(user.ID),
		logger.SessionID(sess.ID),
	)
	return &data, nil
}

// VerifyEmail marks the owner of a verification token as verified.
func (s *Service) VerifyEmail(ctx context.Context, token string) (*session.User, error) {
	email, err := s.parseVerificationToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.store.MarkEmailVerified(ctx, email)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CurrentSession returns the session of r. The cached-data cookie is used
// when valid; otherwise the session is reloaded from the store and the cache
// cookie refilled. Expired or unknown sessions clear all session cookies and
// fail with ErrSessionExpired or ErrSessionNotFound.
func (s *Service) CurrentSession(ctx context.Context, w http.ResponseWriter, r *http.Request) (*session.Data, error) {
	if data, ok := session.FromContext(r.Context()); ok {
		return data, nil
	}

	data, err := s.sessions.Read(w, r)
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, session.ErrSessionNotFound):
		return nil, ErrSessionNotFound
	case !errors.Is(err, session.ErrNoCachedSession):
		return nil, err
	}

	token, err := s.sessions.Token(r)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	sess, err := s.store.FindSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, errors.Join(ErrSessionNotFound, s.sessions.Clear(w))
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if sess.IsExpired(s.now()) {
		return nil, errors.Join(ErrSessionExpired, s.sessions.Clear(w))
	}

	user, err := s.store.FindUserByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, errors.Join(ErrSessionNotFound, s.sessions.Clear(w))
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	data = &session.Data{User: *user, Session: *sess}
	if err := s.sessions.SetCachedData(w, *data); err != nil {
		s.logger.WarnContext(ctx, "failed to refill session cache",
			logger.SessionID(sess.ID),
			logger.Error(err),
		)
	}
	return data, nil
}

// Logout deletes the stored session of r, if any, and clears the cookies.
func (s *Service) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if token, err := s.sessions.Token(r); err == nil {
		if err := s.store.DeleteSessionByToken(ctx, token); err != nil && !errors.Is(err, ErrSessionNotFound) {
			return fmt.Errorf("failed to delete session: %w", err)
		}
	}
	return s.sessions.Clear(w)
}

// Config returns the effective flow settings.
func (s *Service) Config() Config {
	return s.config
}
