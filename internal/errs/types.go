package errs

import (
	"fmt"
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
func NewBadRequestError(detail string) *HTTPError {
	return &HTTPError{
		Status: http.StatusBadRequest,
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Detail: detail,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(detail string) *HTTPError {
	return &HTTPError{
		Status: http.StatusNotFound,
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Detail: detail,
	}
}

// NewInternalServerError creates a generic 500 HTTPError. The detail is the
// bare status text; use NewStoreError when a backend diagnostic is available.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Status: http.StatusInternalServerError,
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Detail: http.StatusText(http.StatusInternalServerError),
	}
}

// NewStoreError creates a 500 HTTPError for a backing-store failure,
// carrying the underlying diagnostic message.
//
// Exposing driver text is intentional: this service is deployed as an
// internal tool and the message is the fastest path to diagnosis. A
// public-facing deployment should scrub it at the proxy.
func NewStoreError(message string) *HTTPError {
	return &HTTPError{
		Status: http.StatusInternalServerError,
		Code:   "DATABASE_ERROR",
		Detail: fmt.Sprintf("Database error: %s", message),
	}
}
