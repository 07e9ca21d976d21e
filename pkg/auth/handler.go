package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/snippets/pkg/binder"
	"github.com/dmitrymomot/snippets/pkg/logger"
	"github.com/dmitrymomot/snippets/pkg/response"
	"github.com/dmitrymomot/snippets/pkg/validator"
)

// Client-facing failures of the auth endpoints.
var (
	errEmailRegistered    = response.NewHTTPError(http.StatusUnprocessableEntity, "This email is already registered.")
	errInvalidCredentials = response.NewHTTPError(http.StatusUnauthorized, "Invalid email or password.")
	errEmailNotVerified   = response.NewHTTPError(http.StatusForbidden, "This email is not verified.")
	errTokenMissing       = response.NewHTTPError(http.StatusUnauthorized, "Token is missing.")
	errTokenExpired       = response.NewHTTPError(http.StatusUnauthorized, "Token is expired.")
	errTokenInvalid       = response.NewHTTPError(http.StatusUnauthorized, "Token is invalid.")
	errTokenPayload       = response.NewHTTPError(http.StatusUnauthorized, "Token has invalid JWT payload.")
	errUserNotFound       = response.NewHTTPError(http.StatusUnauthorized, "User with this email was not found.")
	errSessionNotFound    = response.NewHTTPError(http.StatusUnauthorized, "Session not found.")
)

// httpError maps service errors onto client responses. Unknown errors are
// returned unchanged and rendered as 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		return errEmailRegistered
	case errors.Is(err, ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, ErrEmailNotVerified):
		return errEmailNotVerified
	case errors.Is(err, ErrTokenMissing):
		return errTokenMissing
	case errors.Is(err, ErrTokenExpired):
		return errTokenExpired
	case errors.Is(err, ErrTokenInvalid):
		return errTokenInvalid
	case errors.Is(err, ErrTokenPayloadInvalid):
		return errTokenPayload
	case errors.Is(err, ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrSessionExpired):
		return errSessionNotFound
	}
	return err
}

// Handler serves the auth endpoints.
type Handler struct {
	svc         *Service
	logger      *slog.Logger
	credentials []func(http.Handler) http.Handler
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCredentialsMiddleware wraps the endpoints that accept a password,
// typically with a rate limiter.
func WithCredentialsMiddleware(mw ...func(http.Handler) http.Handler) HandlerOption {
	return func(h *Handler) {
		h.credentials = append(h.credentials, mw...)
	}
}

// NewHandler creates a Handler for svc.
func NewHandler(svc *Service, opts ...HandlerOption) *Handler {
	h := &Handler{svc: svc, logger: svc.logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns a router with the auth endpoints, meant to be mounted
// under /api/v1/auth.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(h.credentials...)
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})
	r.Get("/email-verification", h.VerifyEmail)
	r.Get("/session", h.Session)
	r.Post("/logout", h.Logout)
	return r
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status string, err error, fields response.Fields) {
	mapped := httpError(err)
	var httpErr response.HTTPError
	if !errors.As(mapped, &httpErr) && !isClientError(err) {
		h.logger.ErrorContext(r.Context(), "request failed",
			logger.Status(status),
			logger.Error(err),
		)
	}
	_ = response.Error(w, mapped, fields)
}

func isClientError(err error) bool {
	return errors.Is(err, binder.ErrInvalidJSON) ||
		errors.Is(err, binder.ErrUnsupportedMediaType) ||
		errors.Is(err, binder.ErrBodyTooLarge) ||
		validator.IsValidationError(err)
}

// Register handles POST /register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in RegisterInput
	if err := binder.JSON(w, r, &in); err != nil {
		h.fail(w, r, "AUTH_REGISTER_ERROR", err, nil)
		return
	}

	user, err := h.svc.Register(r.Context(), in)
	if err != nil {
		h.fail(w, r, "AUTH_REGISTER_ERROR", err, nil)
		return
	}

	_ = response.JSON(w, http.StatusCreated, "User registered successfully.", response.Fields{"user": user})
}

// Login handles POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in LoginInput
	if err := binder.JSON(w, r, &in); err != nil {
		h.fail(w, r, "AUTH_LOGIN_ERROR", err, nil)
		return
	}

	data, err := h.svc.Login(r.Context(), w, r, in)
	if err != nil {
		h.fail(w, r, "AUTH_LOGIN_ERROR", err, nil)
		return
	}

	_ = response.JSON(w, http.StatusOK, "User logged in successfully.", response.Fields{
		"user":  data.User,
		"token": data.Session.Token,
	})
}

// VerifyEmail handles GET /email-verification?token=...
func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.VerifyEmail(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		h.fail(w, r, "AUTH_EMAIL_VERIFICATION_ERROR", err, nil)
		return
	}

	_ = response.JSON(w, http.StatusOK, "Email verified successfully! You can login now.", response.Fields{"user": user})
}

// Session handles GET /session.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.CurrentSession(r.Context(), w, r)
	if err != nil {
		h.fail(w, r, "AUTH_SESSION_ERROR", err, response.Fields{"session": nil})
		return
	}

	_ = response.JSON(w, http.StatusOK, "Session data found.", response.Fields{
		"user":    data.User,
		"session": data.Session,
	})
}

// Logout handles POST /logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context(), w, r); err != nil {
		h.fail(w, r, "AUTH_LOGOUT_ERROR", err, nil)
		return
	}

	_ = response.JSON(w, http.StatusOK, "User logged out successfully.", nil)
}
