package session

import "context"

type (
	dataContextKey struct{}
	readContextKey struct{}
)

// readOutcome is what Middleware saw, so later reads in the same request
// neither repeat the work nor write the clearing cookies twice.
type readOutcome struct {
	data *Data
	err  error
}

// WithData adds session data to the context.
func WithData(ctx context.Context, data *Data) context.Context {
	return context.WithValue(ctx, dataContextKey{}, data)
}

// FromContext returns the session data placed by Middleware or WithData.
func FromContext(ctx context.Context) (*Data, bool) {
	data, ok := ctx.Value(dataContextKey{}).(*Data)
	return data, ok && data != nil
}

func withReadOutcome(ctx context.Context, data *Data, err error) context.Context {
	return context.WithValue(ctx, readContextKey{}, readOutcome{data: data, err: err})
}

func readOutcomeFrom(ctx context.Context) (readOutcome, bool) {
	o, ok := ctx.Value(readContextKey{}).(readOutcome)
	return o, ok
}
