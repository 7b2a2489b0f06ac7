package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/puzzlefeed/connections-api/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern: define a request struct with validator tags, implement
// Validate() that runs validation.Struct(req), returning either a specific
// *errs.HTTPError or the raw validator errors.
type Validatable interface {
	Validate() error
}

// validate is the shared validator instance. validator.Validate caches
// struct metadata internally and is safe for concurrent use.
var validate = validator.New()

// Struct runs tag-based validation on a request payload.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data (path params, query, body) into
// payload and validates it.
//
// payload must be a pointer so echo's Bind can populate it. Validation
// failures come back as 400 HTTPErrors ready for the global error handler.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Malformed request")
	}

	if err := payload.Validate(); err != nil {
		// A payload's Validate may already produce the exact wire error.
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return errs.NewBadRequestError(extractDetail(err))
	}

	return nil
}

// extractDetail flattens validator errors into a single human-readable
// detail string.
func extractDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Validation failed: " + err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return "Validation failed: " + strings.Join(fields, ", ")
}
