package session

import (
	"net/http"
)

// Middleware reads the session cookies once per request. Fresh cached data
// is available through FromContext; requests are never rejected.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := m.Read(w, r)

		ctx := withReadOutcome(r.Context(), data, err)
		if err == nil {
			ctx = WithData(ctx, data)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
