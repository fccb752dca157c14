package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ncnews/api/internal/errs"
)

// ErrCode reports the classified Code for err, or Other when err does not
// unwrap to a *sqlerr.Error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// HandleError converts a low-level database error into an application error.
//
// Classification order:
//   - already an *errs.HTTPError: returned unchanged
//   - *pgconn.PgError with a type/format SQLSTATE (22P02): 400 "Invalid input"
//   - *pgconn.PgError constraint violations: 400 with a friendly message
//   - pgx.ErrNoRows / sql.ErrNoRows: generic 404
//   - anything else: opaque 500
//
// The service layer performs its own existence checks and produces exact
// message templates before writes, so the constraint branches here are a
// backstop rather than the primary validation path.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)

		switch sqlErr.Code {
		case InvalidTextRepresentation:
			return errs.NewBadRequestError("Invalid input")

		case ForeignKeyViolation:
			entity := entityName(sqlErr.TableName, sqlErr.ColumnName)
			return errs.NewBadRequestError(fmt.Sprintf("The referenced %s does not exist", entity))

		case NotNullViolation:
			field := humanize(sqlErr.ColumnName)
			if field == "" {
				field = "field"
			}
			return errs.NewBadRequestError(fmt.Sprintf("The %s is required", field))

		case UniqueViolation:
			entity := entityName(sqlErr.TableName, sqlErr.ColumnName)
			return errs.NewBadRequestError(fmt.Sprintf("A %s with this identifier already exists", entity))

		case CheckViolation:
			return errs.NewBadRequestError("One or more values do not meet required conditions")

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found")
	}

	return errs.NewInternalServerError()
}

// entityName infers a human entity name from table/column metadata.
// A column like "article_id" beats the table name, since it identifies the
// relation a foreign key points at.
func entityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return humanize(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanize(entity)
	}

	return "record"
}

// humanize converts snake_case identifiers into title-cased words,
// e.g. "article_img_url" -> "Article Img Url".
func humanize(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
