package errs

import "net/http"

// NewBadRequestError creates a 400 Bad Request HTTPError with the given
// client-facing message.
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError with the given
// client-facing message.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: message,
	}
}

// NewInternalServerError creates an opaque 500. The message is the generic
// status text; the real cause stays in the server logs.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
