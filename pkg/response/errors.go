package response

import "net/http"

// HTTPError is an error that maps onto a status code and a client-safe message.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

var (
	ErrInvalidJSON         = HTTPError{Code: http.StatusBadRequest, Message: "Invalid JSON request."}
	ErrUnsupportedMedia    = HTTPError{Code: http.StatusUnsupportedMediaType, Message: "Content-Type must be application/json."}
	ErrBodyTooLarge        = HTTPError{Code: http.StatusRequestEntityTooLarge, Message: "Request body is too large."}
	ErrInvalidPayload      = HTTPError{Code: http.StatusUnprocessableEntity, Message: "Invalid request payload."}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Message: "The requested resource was not found."}
	ErrMethodNotAllowed    = HTTPError{Code: http.StatusMethodNotAllowed, Message: "Method not allowed."}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "Something went wrong while processing your request."}
)
