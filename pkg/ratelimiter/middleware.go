package ratelimiter

import (
	"hash/fnv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/snippets/pkg/clientip"
	"github.com/dmitrymomot/snippets/pkg/logger"
	"github.com/dmitrymomot/snippets/pkg/response"
)

const maxKeyLength = 64

// ErrTooManyRequests is the response for denied requests.
var ErrTooManyRequests = response.NewHTTPError(http.StatusTooManyRequests, "Too many requests. Please try again later.")

// KeyFunc derives the bucket key of a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// ByIP keys requests by client IP.
func ByIP(r *http.Request) string {
	return clientip.FromRequest(r)
}

// ByPath keys requests by URL path.
func ByPath(r *http.Request) string {
	return r.URL.Path
}

// Composite joins the non-empty keys of fns with ':'. Keys longer than 64
// bytes are replaced by their FNV-1a hash in base 36.
func Composite(fns ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(fns))
		for _, fn := range fns {
			if k := fn(r); k != "" {
				parts = append(parts, k)
			}
		}
		key := strings.Join(parts, ":")
		if len(key) <= maxKeyLength {
			return key
		}
		h := fnv.New64a()
		_, _ = h.Write([]byte(key))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middleware)

type middleware struct {
	logger *slog.Logger
	now    func() time.Time
}

// WithLogger logs store failures.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(m *middleware) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithMiddlewareClock overrides the time source for Retry-After.
func WithMiddlewareClock(now func() time.Time) MiddlewareOption {
	return func(m *middleware) {
		if now != nil {
			m.now = now
		}
	}
}

// Middleware consumes one token per request and answers 429 with a JSON
// body and Retry-After when the bucket is empty. Store failures let the
// request through.
func Middleware(b *Bucket, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	m := &middleware{logger: logger.Discard(), now: time.Now}
	for _, opt := range opts {
		opt(m)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.Allow(r.Context(), k)
			if err != nil {
				m.logger.WarnContext(r.Context(), "rate limit check failed", logger.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				secs := int((res.RetryAfter(m.now()) + time.Second - 1) / time.Second)
				h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
				_ = response.Error(w, ErrTooManyRequests, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
