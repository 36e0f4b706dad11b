package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenchworks/autoservice/internal/errs"
)

type createRequest struct {
	Name  string `json:"name" validate:"required"`
	Grade int    `json:"grade" validate:"gte=1,lte=10"`
}

func (r *createRequest) Validate() error {
	return Struct(r)
}

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate_Success(t *testing.T) {
	c := newJSONContext(t, `{"name": "Petrov", "grade": 5}`)

	payload := &createRequest{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "Petrov", payload.Name)
	assert.Equal(t, 5, payload.Grade)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c := newJSONContext(t, `{"name": `)

	err := BindAndValidate(c, &createRequest{})
	require.Error(t, err)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	c := newJSONContext(t, `{"grade": 11}`)

	err := BindAndValidate(c, &createRequest{})
	require.Error(t, err)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 2)

	fields := []string{httpErr.Errors[0].Field, httpErr.Errors[1].Field}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "grade")
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	custom := CustomValidationErrors{
		{Field: "cost", Message: "must be at least 0"},
	}
	msg, fieldErrors := extractValidationError(custom)
	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "cost", fieldErrors[0].Field)
	assert.Equal(t, "must be at least 0", fieldErrors[0].Error)
}
