package password

import (
	"context"
	"runtime"

	"github.com/dmitrymomot/snippets/pkg/async"
)

// Hasher schedules hashing on a bounded worker pool.
type Hasher struct {
	params Params
	pool   *async.Pool
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithParams overrides the scrypt cost parameters.
func WithParams(p Params) Option {
	return func(h *Hasher) {
		h.params = p
	}
}

// WithPool runs derivations on the given pool.
func WithPool(pool *async.Pool) Option {
	return func(h *Hasher) {
		if pool != nil {
			h.pool = pool
		}
	}
}

// NewHasher returns a Hasher. Without WithPool it allows runtime.NumCPU()
// concurrent derivations.
func NewHasher(opts ...Option) (*Hasher, error) {
	h := &Hasher{params: DefaultParams()}
	for _, opt := range opts {
		opt(h)
	}

	if h.pool == nil {
		pool, err := async.NewPool(runtime.NumCPU())
		if err != nil {
			return nil, err
		}
		h.pool = pool
	}

	return h, nil
}

// Hash derives a "salt:digest" value for password on the pool.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	return async.Submit(ctx, h.pool, password, func(_ context.Context, pw string) (string, error) {
		return hashWith(h.params, pw)
	}).AwaitContext(ctx)
}

// Verify checks password against stored on the pool.
// The returned error is non-nil only when ctx ends first.
func (h *Hasher) Verify(ctx context.Context, stored, password string) (bool, error) {
	return async.Submit(ctx, h.pool, password, func(_ context.Context, pw string) (bool, error) {
		return verifyWith(h.params, stored, pw), nil
	}).AwaitContext(ctx)
}
