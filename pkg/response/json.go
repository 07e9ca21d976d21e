package response

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/dmitrymomot/snippets/pkg/binder"
	"github.com/dmitrymomot/snippets/pkg/validator"
)

// Fields are extra top-level members of a JSON response body.
type Fields map[string]any

// JSON writes {"status": <status text>, "message": message, ...fields}.
// An empty message is omitted.
func JSON(w http.ResponseWriter, code int, message string, fields Fields) error {
	body := make(map[string]any, len(fields)+2)
	maps.Copy(body, fields)
	body["status"] = http.StatusText(code)
	if message != "" {
		body["message"] = message
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(body)
}

// Error renders err. Validation errors become 422 with an "errors" member,
// binder errors map to their HTTPError, HTTPError uses its own code and
// message, anything else is a 500 with a generic message.
func Error(w http.ResponseWriter, err error, fields Fields) error {
	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		f := Fields{"errors": verrs.Map()}
		maps.Copy(f, fields)
		return JSON(w, ErrInvalidPayload.Code, ErrInvalidPayload.Message, f)
	}

	switch {
	case errors.Is(err, binder.ErrInvalidJSON):
		err = ErrInvalidJSON
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		err = ErrUnsupportedMedia
	case errors.Is(err, binder.ErrBodyTooLarge):
		err = ErrBodyTooLarge
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return JSON(w, httpErr.Code, httpErr.Message, fields)
	}
	return JSON(w, ErrInternalServerError.Code, ErrInternalServerError.Message, fields)
}

// NotFound is a JSON 404 handler for routers.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	_ = JSON(w, ErrNotFound.Code, ErrNotFound.Message, nil)
}

// MethodNotAllowed is a JSON 405 handler for routers.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	_ = JSON(w, ErrMethodNotAllowed.Code, ErrMethodNotAllowed.Message, nil)
}
