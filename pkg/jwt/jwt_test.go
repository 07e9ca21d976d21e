package jwt_test

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/snippets/pkg/jwt"
)

type emailClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

const signingKey = "jwt-test-signing-key"

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := jwt.New(nil)
	require.ErrorIs(t, err, jwt.ErrMissingSigningKey)

	_, err = jwt.NewFromString("")
	require.ErrorIs(t, err, jwt.ErrMissingSigningKey)

	svc, err := jwt.NewFromString(signingKey)
	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestService_GenerateParse(t *testing.T) {
	t.Parallel()

	svc, err := jwt.NewFromString(signingKey)
	require.NoError(t, err)

	token, err := svc.Generate(emailClaims{Email: "user@example.com", RegisteredClaims: svc.Expiry(15 * time.Minute)})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(token, "."))

	var parsed emailClaims
	require.NoError(t, svc.Parse(token, &parsed))
	assert.Equal(t, "user@example.com", parsed.Email)
	require.NotNil(t, parsed.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), parsed.ExpiresAt.Time, 2*time.Second)
}

func TestService_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer, err := jwt.NewFromString(signingKey, jwt.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	token, err := issuer.Generate(emailClaims{Email: "a@b.c", RegisteredClaims: issuer.Expiry(900 * time.Second)})
	require.NoError(t, err)

	later, err := jwt.NewFromString(signingKey, jwt.WithClock(func() time.Time { return now.Add(901 * time.Second) }))
	require.NoError(t, err)

	var parsed emailClaims
	require.ErrorIs(t, later.Parse(token, &parsed), jwt.ErrExpiredToken)

	require.NoError(t, issuer.Parse(token, &parsed))
}

func TestService_Invalid(t *testing.T) {
	t.Parallel()

	svc, err := jwt.NewFromString(signingKey)
	require.NoError(t, err)

	other, err := jwt.NewFromString("another-signing-key")
	require.NoError(t, err)

	foreign, err := other.Generate(emailClaims{Email: "a@b.c", RegisteredClaims: other.Expiry(time.Minute)})
	require.NoError(t, err)

	noExp, err := svc.Generate(emailClaims{Email: "a@b.c"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty", "", jwt.ErrInvalidToken},
		{"garbage", "not.a.jwt", jwt.ErrInvalidToken},
		{"wrong key", foreign, jwt.ErrInvalidToken},
		{"missing exp", noExp, jwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var parsed emailClaims
			require.ErrorIs(t, svc.Parse(tt.token, &parsed), tt.wantErr)
		})
	}
}

func TestService_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	svc, err := jwt.NewFromString(signingKey)
	require.NoError(t, err)

	claims := emailClaims{Email: "a@b.c", RegisteredClaims: svc.Expiry(time.Minute)}

	hs512, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte(signingKey))
	require.NoError(t, err)

	none, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	var parsed emailClaims
	require.ErrorIs(t, svc.Parse(hs512, &parsed), jwt.ErrUnexpectedSigningMethod)
	require.ErrorIs(t, svc.Parse(none, &parsed), jwt.ErrUnexpectedSigningMethod)
}

func TestService_MissingClaims(t *testing.T) {
	t.Parallel()

	svc, err := jwt.NewFromString(signingKey)
	require.NoError(t, err)

	_, err = svc.Generate(nil)
	require.ErrorIs(t, err, jwt.ErrMissingClaims)
	require.ErrorIs(t, svc.Parse("x", nil), jwt.ErrMissingClaims)
}
