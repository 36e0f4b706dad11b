package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenchworks/autoservice/internal/errs"
)

func TestParseOrderFilter_AllFields(t *testing.T) {
	filter, err := ParseOrderFilter(RawOrderFilter{
		Brand:     "Toyota",
		MinCost:   "100.50",
		MaxCost:   "5000",
		GradeGTE:  "3",
		IssueFrom: "2024-01-01",
		IssueTo:   "2024-12-31",
	})
	require.NoError(t, err)

	require.NotNil(t, filter.Brand)
	assert.Equal(t, "Toyota", *filter.Brand)

	require.NotNil(t, filter.MinCost)
	assert.True(t, filter.MinCost.Equal(decimal.RequireFromString("100.50")))

	require.NotNil(t, filter.MaxCost)
	assert.True(t, filter.MaxCost.Equal(decimal.NewFromInt(5000)))

	require.NotNil(t, filter.GradeGTE)
	assert.Equal(t, 3, *filter.GradeGTE)

	require.NotNil(t, filter.Issue.From)
	assert.Equal(t, "2024-01-01", filter.Issue.From.Format(DateLayout))
	require.NotNil(t, filter.Issue.To)
	assert.Equal(t, "2024-12-31", filter.Issue.To.Format(DateLayout))
}

func TestParseOrderFilter_EmptyIsZero(t *testing.T) {
	filter, err := ParseOrderFilter(RawOrderFilter{})
	require.NoError(t, err)
	assert.True(t, filter.IsZero())
}

func TestParseOrderFilter_CoercionFailures(t *testing.T) {
	cases := []struct {
		name string
		raw  RawOrderFilter
	}{
		{"non-numeric min_cost", RawOrderFilter{MinCost: "abc"}},
		{"non-numeric max_cost", RawOrderFilter{MaxCost: "12,50"}},
		{"negative min_cost", RawOrderFilter{MinCost: "-1"}},
		{"non-integer grade", RawOrderFilter{GradeGTE: "3.5"}},
		{"zero grade", RawOrderFilter{GradeGTE: "0"}},
		{"malformed issue_from", RawOrderFilter{IssueFrom: "01/02/2024"}},
		{"malformed issue_to", RawOrderFilter{IssueTo: "2024-13-45"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOrderFilter(tc.raw)
			require.Error(t, err)

			httpErr, ok := err.(*errs.HTTPError)
			require.True(t, ok)
			assert.Equal(t, errs.CodeInvalidFilterValue, httpErr.Code)
			assert.Equal(t, 400, httpErr.Status)
			require.Len(t, httpErr.Errors, 1, "error names the offending field")
		})
	}
}

func TestParseOrderFilter_ZeroCostAllowed(t *testing.T) {
	filter, err := ParseOrderFilter(RawOrderFilter{MinCost: "0"})
	require.NoError(t, err)
	require.NotNil(t, filter.MinCost)
	assert.True(t, filter.MinCost.IsZero())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("issue_from", "2023-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2023-06-15", d.Format(DateLayout))

	_, err = ParseDate("issue_from", "yesterday")
	require.Error(t, err)
}

func TestParseDateRange_PartialBounds(t *testing.T) {
	dr, err := ParseDateRange("2024-03-01", "")
	require.NoError(t, err)
	require.NotNil(t, dr.From)
	assert.Nil(t, dr.To)
}
