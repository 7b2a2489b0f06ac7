package errs

import "strings"

// HTTPError is the error type every failed request resolves to.
//
// It implements the `error` interface and serializes directly into the
// response body. Only Detail crosses the wire; Status and Code are used by
// the global error handler and request logging.
type HTTPError struct {
	Status int    `json:"-"`
	Code   string `json:"-"`
	Detail string `json:"detail"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Detail
}

// Is reports whether target is also an *HTTPError, so
// errors.Is(err, &HTTPError{}) can be used as a type check across wraps.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithDetail returns a copy of this HTTPError with Detail replaced.
// Useful for customizing a template error without mutating the original.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	return &HTTPError{
		Status: e.Status,
		Code:   e.Code,
		Detail: detail,
	}
}

// MakeUpperCaseWithUnderscores converts an HTTP status text into a stable
// machine-readable code, e.g. "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
