package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/snippets/pkg/binder"
)

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe *bool  `json:"rememberMe"`
}

func newRequest(body, contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		var req loginRequest
		err := binder.JSON(httptest.NewRecorder(), newRequest(`{"email":"a@b.co","password":"x","rememberMe":false}`, "application/json; charset=utf-8"), &req)
		require.NoError(t, err)
		assert.Equal(t, "a@b.co", req.Email)
		require.NotNil(t, req.RememberMe)
		assert.False(t, *req.RememberMe)
	})

	t.Run("missing content type accepted", func(t *testing.T) {
		t.Parallel()

		var req loginRequest
		require.NoError(t, binder.JSON(httptest.NewRecorder(), newRequest(`{"email":"a@b.co"}`, ""), &req))
		assert.Nil(t, req.RememberMe)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		want        error
	}{
		{"wrong media type", `{}`, "text/plain", binder.ErrUnsupportedMediaType},
		{"malformed media type", `{}`, "application/", binder.ErrUnsupportedMediaType},
		{"empty body", ``, "application/json", binder.ErrInvalidJSON},
		{"syntax error", `{"email":`, "application/json", binder.ErrInvalidJSON},
		{"unknown field", `{"email":"a@b.co","admin":true}`, "application/json", binder.ErrInvalidJSON},
		{"wrong type", `{"rememberMe":"yes"}`, "application/json", binder.ErrInvalidJSON},
		{"trailing data", `{"email":"a@b.co"}{}`, "application/json", binder.ErrInvalidJSON},
		{"too large", `{"email":"` + strings.Repeat("a", binder.DefaultMaxBodySize) + `"}`, "application/json", binder.ErrBodyTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req loginRequest
			err := binder.JSON(httptest.NewRecorder(), newRequest(tt.body, tt.contentType), &req)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
