// Package sqlerr specifically handles database driver errors.
//
// It parses error codes from the Postgres driver and converts them into
// the application's HTTP error shape, so repositories and the global error
// handler never have to inspect SQLSTATE values themselves.
package sqlerr

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code classifies a database error into the categories this service
// cares about.
type Code int

const (
	Other Code = iota
	ConnectionException
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	SyntaxOrAccessViolation
	InsufficientResources
)

// MapCode maps a Postgres SQLSTATE onto a Code. Specific constraint states
// are matched exactly; everything else falls back to its two-character
// class.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	}

	if len(sqlstate) >= 2 {
		switch sqlstate[:2] {
		case "08":
			return ConnectionException
		case "42":
			return SyntaxOrAccessViolation
		case "53":
			return InsufficientResources
		}
	}

	return Other
}

// Error is the normalized form of a Postgres server error. It keeps the
// original driver error for Unwrap so errors.As still reaches it.
type Error struct {
	Code           Code
	DatabaseCode   string
	Severity       string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	parts := []string{e.Message}
	if e.TableName != "" {
		parts = append(parts, fmt.Sprintf("table:%s", e.TableName))
	}
	return strings.Join(parts, " ")
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// ConvertPgError converts a raw pgconn.PgError into our normalized Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		DatabaseCode:   src.Code,
		Severity:       src.Severity,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}
