// Package sqlerr classifies database driver errors.
//
// It parses SQLSTATE codes from the PostgreSQL driver and converts them into
// the API's HTTPError shape, so engine-specific codes never leak to clients.
// The one code this API depends on is 22P02 (invalid text representation),
// raised when a malformed identifier reaches the engine; it maps to
// 400 "Invalid input".
package sqlerr

import "github.com/jackc/pgx/v5/pgconn"

// Code is the application-level category of a database error.
type Code int

const (
	// Other covers every SQLSTATE this package does not classify.
	Other Code = iota

	// InvalidTextRepresentation: a parameter could not be coerced to its
	// column type (SQLSTATE 22P02), e.g. a non-integer id.
	InvalidTextRepresentation

	// ForeignKeyViolation: an insert or update referenced a missing row
	// (SQLSTATE 23503).
	ForeignKeyViolation

	// NotNullViolation: a required column received NULL (SQLSTATE 23502).
	NotNullViolation

	// UniqueViolation: a unique constraint was violated (SQLSTATE 23505).
	UniqueViolation

	// CheckViolation: a CHECK constraint was violated (SQLSTATE 23514).
	CheckViolation
)

// MapCode converts a raw SQLSTATE string into a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "22P02":
		return InvalidTextRepresentation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	default:
		return Other
	}
}

// Error is a classified database error. It keeps the original SQLSTATE and
// constraint metadata for logging while exposing a Code the handler chain
// can switch on.
type Error struct {
	Code           Code
	DatabaseCode   string
	Message        string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.As/Is chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// ConvertPgError converts a raw *pgconn.PgError into a classified *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}
