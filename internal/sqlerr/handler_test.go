package sqlerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncnews/api/internal/errs"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, InvalidTextRepresentation, MapCode("22P02"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, Other, MapCode("40001"))
}

func TestHandleErrorPassesHTTPErrorsThrough(t *testing.T) {
	orig := errs.NewNotFoundError("No article found for article_id 7")
	assert.Same(t, orig, HandleError(orig))

	wrapped := fmt.Errorf("query failed: %w", orig)
	converted := HandleError(wrapped)
	assert.Same(t, wrapped, converted)
}

func TestHandleErrorInvalidTextRepresentation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type integer: "banana"`}

	converted := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, converted, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "Invalid input", httpErr.Message)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		TableName:      "comments",
		ColumnName:     "article_id",
		ConstraintName: "comments_article_id_fkey",
	}

	converted := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, converted, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "The referenced Article does not exist", httpErr.Message)
}

func TestHandleErrorNoRows(t *testing.T) {
	converted := HandleError(pgx.ErrNoRows)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, converted, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleErrorUnclassifiedIsOpaque(t *testing.T) {
	converted := HandleError(errors.New("dial tcp: connection refused"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, converted, &httpErr)
	assert.Equal(t, 500, httpErr.Status)
	assert.Equal(t, "Internal Server Error", httpErr.Message)
	assert.NotContains(t, httpErr.Message, "dial tcp")
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "22P02"})
	assert.Equal(t, InvalidTextRepresentation, ErrCode(fmt.Errorf("scan: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}
