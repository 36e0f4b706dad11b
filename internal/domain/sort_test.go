package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenchworks/autoservice/internal/errs"
)

func TestResolveSort_RegisteredField(t *testing.T) {
	sort, err := ResolveSort(OrderFields, "cost", "asc")
	require.NoError(t, err)
	assert.Equal(t, "orders.cost", sort.Column)
	assert.Equal(t, "ASC", sort.Direction())
}

func TestResolveSort_UnknownFieldRejected(t *testing.T) {
	_, err := ResolveSort(OrderFields, "cost; DROP TABLE orders", "asc")
	require.Error(t, err)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, errs.CodeInvalidSortField, httpErr.Code)
	assert.Equal(t, 400, httpErr.Status)
}

func TestResolveSort_MetaNotSortable(t *testing.T) {
	_, err := ResolveSort(OrderFields, "meta", "asc")
	require.Error(t, err)
}

func TestResolveSort_DirectionPermissive(t *testing.T) {
	// Anything that is not "asc" (case-insensitive) sorts descending.
	cases := []struct {
		dir        string
		descending bool
	}{
		{"asc", false},
		{"ASC", false},
		{"Asc", false},
		{"desc", true},
		{"DESC", true},
		{"descending", true},
		{"banana", true},
		{"", true},
	}

	for _, tc := range cases {
		sort, err := ResolveSort(OrderFields, "id", tc.dir)
		require.NoError(t, err, tc.dir)
		assert.Equal(t, tc.descending, sort.Descending, "dir=%q", tc.dir)
	}
}

func TestFieldSet_ResolveIsExactMatch(t *testing.T) {
	_, ok := OrderFields.Resolve("Cost")
	assert.False(t, ok, "lookup is case-sensitive")

	_, ok = OrderFields.Resolve("meta")
	assert.False(t, ok, "meta is not a registered field")

	f, ok := OrderFields.Resolve("actual_end_date")
	require.True(t, ok)
	assert.Equal(t, "orders.actual_end_date", f.Column)
	assert.Equal(t, KindNullableDate, f.Kind)
}
