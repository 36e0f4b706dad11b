package errs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores("Internal Server Error"))
}

func TestQueryLayerErrorCodes(t *testing.T) {
	sortErr := NewInvalidSortFieldError("paint_color")
	assert.Equal(t, CodeInvalidSortField, sortErr.Code)
	assert.Equal(t, 400, sortErr.Status)
	assert.Contains(t, sortErr.Message, "paint_color")

	valueErr := NewInvalidFilterValueError("min_cost", "must be a number")
	assert.Equal(t, CodeInvalidFilterValue, valueErr.Code)
	assert.Len(t, valueErr.Errors, 1)
	assert.Equal(t, "min_cost", valueErr.Errors[0].Field)

	patternErr := NewInvalidPatternError("Invalid search pattern: bad escape")
	assert.Equal(t, CodeInvalidPattern, patternErr.Code)
	assert.Equal(t, 400, patternErr.Status)
}

func TestBadRequestDefaultsCode(t *testing.T) {
	err := NewBadRequestError("nope", false, nil, nil, nil)
	assert.Equal(t, "BAD_REQUEST", err.Code)
}
