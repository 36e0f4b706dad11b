package errs

import (
	"fmt"
	"net/http"
)

// Error codes for the dynamic query layer. These are raised before any
// query executes (or, for CodeInvalidPattern, passed through from the
// store's rejection of a malformed expression).
const (
	CodeInvalidSortField   = "INVALID_SORT_FIELD"
	CodeInvalidFilterValue = "INVALID_FILTER_VALUE"
	CodeInvalidPattern     = "INVALID_PATTERN"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Optional payload:
//   - code: custom code string (nil defaults to "BAD_REQUEST")
//   - errors: slice of field errors (validation)
//   - action: client instruction (e.g. redirect)
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the underlying error:
// internals stay in the logs, not in client responses.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewInvalidSortFieldError rejects a sort request naming an unregistered field.
func NewInvalidSortFieldError(field string) *HTTPError {
	code := CodeInvalidSortField
	return NewBadRequestError(fmt.Sprintf("Invalid sort_by: %s", field), true, &code, nil, nil)
}

// NewInvalidFilterValueError rejects a filter value that cannot be coerced
// to the field's declared kind (non-numeric cost, malformed date, ...).
func NewInvalidFilterValueError(field, reason string) *HTTPError {
	code := CodeInvalidFilterValue
	return NewBadRequestError(
		fmt.Sprintf("Invalid value for %s: %s", field, reason),
		true,
		&code,
		[]FieldError{{Field: field, Error: reason}},
		nil,
	)
}

// NewInvalidPatternError surfaces the store's rejection of a malformed
// search expression.
func NewInvalidPatternError(message string) *HTTPError {
	code := CodeInvalidPattern
	return NewBadRequestError(message, true, &code, nil, nil)
}

// ValidationError converts a generic validation error into a 400 Bad Request.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil, nil)
}
