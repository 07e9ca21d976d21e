package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/snippets/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"error", logger.Error(err), "error", err},
		{"user id", logger.UserID("u1"), "user_id", "u1"},
		{"session id", logger.SessionID("s1"), "session_id", "s1"},
		{"request id", logger.RequestID("r1"), "request_id", "r1"},
		{"status", logger.Status("AUTH_LOGIN_ERROR"), "status", "AUTH_LOGIN_ERROR"},
		{"component", logger.Component("auth"), "component", "auth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestAttrs_NilValuesAreDropped(t *testing.T) {
	t.Parallel()

	for _, attr := range []slog.Attr{
		logger.Error(nil),
		logger.UserID(nil),
		logger.SessionID(nil),
		logger.RequestID(nil),
	} {
		assert.True(t, attr.Equal(slog.Attr{}))
	}
}
