package sqlerr

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/puzzlefeed/connections-api/internal/errs"
)

// ErrCode reports the mapped Code for a given error, or Other when the
// chain contains no *sqlerr.Error.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// HandleError converts a low-level database error into an application-level
// HTTPError.
//
//   - *errs.HTTPError values pass through unchanged, preventing double
//     wrapping when a layer above already classified the failure.
//   - ErrNoRows maps to 404; callers with more context (which date was
//     missing) should map it themselves before reaching this fallback.
//   - Postgres server errors and anything else surface as a store error
//     carrying the driver diagnostic.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found")
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		return errs.NewStoreError(sqlErr.Message)
	}

	// Connect failures and pool errors arrive as wrapped net/pgconn errors
	// without a SQLSTATE. The only backend this service talks to is the
	// database, so the diagnostic is still a database error.
	return errs.NewStoreError(err.Error())
}
