package auth_test

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/snippets/pkg/auth"
)

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("ALLOW_UNVERIFIED_EMAIL", "true")
	t.Setenv("SHORT_SESSION_TTL", "12h")

	cfg, err := env.ParseAs[auth.Config]()
	require.NoError(t, err)
	assert.True(t, cfg.AllowUnverifiedEmail)
	assert.Equal(t, 12*time.Hour, cfg.ShortSessionTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 15*time.Minute, cfg.VerificationTokenTTL)
	assert.Equal(t, 32, cfg.SessionTokenLength)
}

func TestWithConfig_FillsZeroValues(t *testing.T) {
	t.Parallel()

	e := newEnv(t, nil, auth.WithConfig(auth.Config{AllowUnverifiedEmail: true, SessionTokenLength: 48}))
	cfg := e.svc.Config()
	assert.True(t, cfg.AllowUnverifiedEmail)
	assert.Equal(t, 48, cfg.SessionTokenLength)
	assert.Equal(t, auth.DefaultConfig().SessionTTL, cfg.SessionTTL)
	assert.Equal(t, auth.DefaultConfig().VerificationTokenTTL, cfg.VerificationTokenTTL)
}
