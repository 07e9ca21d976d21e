package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// HeaderAlgorithm is the only signing method issued and accepted.
const HeaderAlgorithm = "HS256"

// RegisteredClaims re-exports the standard claim set for embedding.
type RegisteredClaims = gojwt.RegisteredClaims

// Claims is implemented by any claim set, usually by embedding RegisteredClaims.
type Claims = gojwt.Claims

// Service signs and verifies HS256 tokens with a single shared key.
type Service struct {
	signingKey []byte
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for exp/nbf/iat.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a new JWT service with the provided signing key.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: signingKey,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewFromString creates a new JWT service from a string signing key.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	return New([]byte(signingKey), opts...)
}

// Now returns the service clock reading, used when stamping claims.
func (s *Service) Now() time.Time {
	return s.now()
}

// Expiry returns registered claims valid for ttl from now.
func (s *Service) Expiry(ttl time.Duration) RegisteredClaims {
	now := s.now()
	return RegisteredClaims{
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
	}
}

// Generate signs claims with HS256.
func (s *Service) Generate(claims Claims) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Parse verifies tokenString and decodes it into claims. Expired tokens fail
// with ErrExpiredToken, every other problem with ErrInvalidToken or
// ErrUnexpectedSigningMethod.
func (s *Service) Parse(tokenString string, claims Claims) error {
	if claims == nil {
		return ErrMissingClaims
	}

	_, err := gojwt.ParseWithClaims(tokenString, claims,
		func(t *gojwt.Token) (any, error) {
			if t.Method.Alg() != HeaderAlgorithm {
				return nil, ErrUnexpectedSigningMethod
			}
			return s.signingKey, nil
		},
		gojwt.WithTimeFunc(s.now),
		gojwt.WithExpirationRequired(),
	)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, gojwt.ErrTokenExpired):
		return errors.Join(ErrExpiredToken, err)
	case errors.Is(err, ErrUnexpectedSigningMethod):
		return err
	default:
		return errors.Join(ErrInvalidToken, err)
	}
}
