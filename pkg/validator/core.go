package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError is one failed rule. Code is a stable machine-readable
// identifier such as "validation.required".
type ValidationError struct {
	Field   string
	Message string
	Code    string
}

// ValidationErrors collects failed rules in the order they were checked.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, err := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Field)
		b.WriteString(": ")
		b.WriteString(err.Message)
	}
	return b.String()
}

// Has reports whether field failed any rule.
func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

// Get returns the messages for field.
func (ve ValidationErrors) Get(field string) []string {
	var out []string
	for _, err := range ve {
		if err.Field == field {
			out = append(out, err.Message)
		}
	}
	return out
}

// Fields returns the failed fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var out []string
	for _, err := range ve {
		if !slices.Contains(out, err.Field) {
			out = append(out, err.Field)
		}
	}
	return out
}

// Map groups messages by field, suitable for a JSON error body.
func (ve ValidationErrors) Map() map[string][]string {
	if len(ve) == 0 {
		return nil
	}
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns ValidationErrors for the failed ones,
// or nil.
func Apply(rules ...Rule) error {
	var failed ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			failed = append(failed, rule.Error)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return failed
}

// ExtractValidationErrors unwraps ValidationErrors from err.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if err != nil && errors.As(err, &ve) {
		return ve
	}
	return nil
}

// IsValidationError reports whether err wraps ValidationErrors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return err != nil && errors.As(err, &ve)
}
