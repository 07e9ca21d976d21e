package async

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// AwaitContext waits for completion or for ctx to be done.
// The computation itself keeps running when ctx ends first.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// Async runs fn(ctx, param) in its own goroutine and returns a Future.
// A context that is already done completes the Future with ctx.Err()
// without calling fn.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Pool limits the number of computations running concurrently.
// The zero value is not usable; create pools with NewPool.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool returns a pool running at most size computations at once.
func NewPool(size int) (*Pool, error) {
	if size < 1 {
		return nil, ErrInvalidPoolSize
	}
	return &Pool{sem: semaphore.NewWeighted(int64(size))}, nil
}

// Submit runs fn on the pool. The returned Future completes with ctx.Err()
// when ctx ends before a slot becomes available.
func Submit[T any, U any](ctx context.Context, p *Pool, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	return Async(ctx, param, func(ctx context.Context, param T) (U, error) {
		if err := p.sem.Acquire(ctx, 1); err != nil {
			var zero U
			return zero, err
		}
		defer p.sem.Release(1)

		return fn(ctx, param)
	})
}
