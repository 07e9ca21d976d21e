package cookie

import (
	"net/http"
	"time"
)

// Priority is the non-standard Priority attribute understood by Chromium.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Options holds the attributes written after the cookie value.
// A nil MaxAge omits the attribute; the zero Expires omits Expires.
type Options struct {
	Path        string
	Domain      string
	MaxAge      *int
	Expires     time.Time
	Secure      bool
	HttpOnly    bool
	SameSite    http.SameSite
	Priority    Priority
	Partitioned bool
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithMaxAge sets Max-Age in seconds. Negative values leave the attribute out.
func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = &seconds
	}
}

// WithoutMaxAge removes a Max-Age inherited from the manager defaults,
// producing a browser-session cookie.
func WithoutMaxAge() Option {
	return func(o *Options) {
		o.MaxAge = nil
	}
}

func WithExpires(t time.Time) Option {
	return func(o *Options) {
		o.Expires = t
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HttpOnly = httpOnly
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

func WithPriority(p Priority) Option {
	return func(o *Options) {
		o.Priority = p
	}
}

func WithPartitioned(partitioned bool) Option {
	return func(o *Options) {
		o.Partitioned = partitioned
	}
}

// applyOptions copies base and applies opts to the copy.
func applyOptions(base Options, opts []Option) Options {
	result := base
	if base.MaxAge != nil {
		v := *base.MaxAge
		result.MaxAge = &v
	}

	for _, opt := range opts {
		opt(&result)
	}

	return result
}
