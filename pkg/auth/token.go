package auth

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/snippets/pkg/jwt"
	"github.com/dmitrymomot/snippets/pkg/validator"
)

// verificationClaims is the payload of an email-verification token.
type verificationClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func (s *Service) verificationToken(email string) (string, error) {
	return s.tokens.Generate(&verificationClaims{
		RegisteredClaims: s.tokens.Expiry(s.config.VerificationTokenTTL),
		Email:            email,
	})
}

// parseVerificationToken returns the lower-cased email carried by token.
func (s *Service) parseVerificationToken(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", ErrTokenMissing
	}

	var claims verificationClaims
	if err := s.tokens.Parse(token, &claims); err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return "", errors.Join(ErrTokenExpired, err)
		}
		return "", errors.Join(ErrTokenInvalid, err)
	}

	if !validator.IsEmail(claims.Email) {
		return "", ErrTokenPayloadInvalid
	}
	return normalizeEmail(claims.Email), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
