// Package async runs CPU-heavy work away from the calling goroutine.
//
// A Future holds the eventual result of a computation started with Async.
// A Pool bounds how many such computations run at once so that expensive
// work (password key derivation, for example) cannot starve unrelated
// request handling. Submitting to a full pool waits for a free slot or for
// the context to be cancelled, whichever comes first.
//
// # Usage
//
//	pool := async.NewPool(runtime.NumCPU())
//
//	future := async.Submit(ctx, pool, password, func(_ context.Context, p string) (string, error) {
//	    return expensiveHash(p)
//	})
//
//	hash, err := future.AwaitContext(ctx)
package async
