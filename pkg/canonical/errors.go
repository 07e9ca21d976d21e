package canonical

import "errors"

var (
	// ErrNonFinite is returned for NaN and ±Inf values.
	ErrNonFinite = errors.New("canonical.non_finite_number")
	// ErrUnsupported is returned when a value cannot be rendered as JSON at all.
	ErrUnsupported = errors.New("canonical.unsupported_value")
)
