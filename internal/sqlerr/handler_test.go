package sqlerr

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenchworks/autoservice/internal/errs"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, InvalidTextRepresentation, MapCode("22P02"))
	assert.Equal(t, InvalidRegularExpression, MapCode("2201B"))
	assert.Equal(t, StringDataRightTruncation, MapCode("22001"))
	assert.Equal(t, Other, MapCode("42601"))
}

func TestHandleError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "cars_number_key"`,
		TableName:      "cars",
		ConstraintName: "cars_number_key",
	}

	err := HandleError(pgErr)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "CAR_ALREADY_EXISTS", httpErr.Code)
	assert.Contains(t, httpErr.Message, "Number")
}

func TestHandleError_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23503",
		Message:    "insert or update on table \"orders\" violates foreign key constraint",
		TableName:  "orders",
		ColumnName: "car_id",
	}

	err := HandleError(pgErr)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "ORDER_NOT_FOUND", httpErr.Code)
	assert.Contains(t, httpErr.Message, "car")
}

func TestHandleError_InvalidRegularExpression(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity: "ERROR",
		Code:     "2201B",
		Message:  "invalid regular expression: parentheses () not balanced",
	}

	err := HandleError(pgErr)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, errs.CodeInvalidPattern, httpErr.Code)
	assert.Contains(t, httpErr.Message, "parentheses () not balanced")
}

func TestHandleError_StringDataRightTruncation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:  "ERROR",
		Code:      "22001",
		Message:   "value too long for type character varying(64)",
		TableName: "cars",
	}

	err := HandleError(pgErr)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "CAR_TOO_LONG", httpErr.Code)
	assert.Contains(t, httpErr.Message, "too long")
}

func TestHandleError_NoRowsWithTableAnnotation(t *testing.T) {
	err := HandleError(fmt.Errorf("table:mechanics: %w", pgx.ErrNoRows))

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "Mechanic not found", httpErr.Message)
}

func TestHandleError_NoRowsWithoutAnnotation(t *testing.T) {
	err := HandleError(pgx.ErrNoRows)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleError_HTTPErrorPassesThrough(t *testing.T) {
	original := errs.NewInvalidSortFieldError("nope")
	assert.Same(t, original, HandleError(original))
}

func TestHandleError_UnknownErrorSanitized(t *testing.T) {
	err := HandleError(fmt.Errorf("connection refused to 10.0.0.5:5432"))

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 500, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "10.0.0.5", "internals never reach the client")
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "number", extractColumnForUniqueViolation("cars_number_key"))
	assert.Equal(t, "brand", extractColumnForUniqueViolation("unique_cars_brand"))
	assert.Equal(t, "", extractColumnForUniqueViolation("some_random_index"))
}

func TestErrCode(t *testing.T) {
	wrapped := fmt.Errorf("creating car: %w", ConvertPgError(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, UniqueViolation, ErrCode(wrapped))
	assert.Equal(t, Other, ErrCode(fmt.Errorf("plain")))
}
