package domain

import (
	"strings"

	"github.com/wrenchworks/autoservice/internal/errs"
)

// SortDirAsc is the ascending direction token. Comparison is
// case-insensitive; any other token sorts descending.
const SortDirAsc = "asc"

// Sort is an ordering directive over a registered field.
type Sort struct {
	Column     string
	Descending bool
}

// Direction returns the SQL keyword for the directive.
func (s Sort) Direction() string {
	if s.Descending {
		return "DESC"
	}
	return "ASC"
}

// ResolveSort validates sortBy against the entity's field set and
// produces an ordering directive. An unregistered field name fails with
// INVALID_SORT_FIELD before any query is built.
//
// Any direction token other than "asc" means descending. Permissive on
// purpose: "DESC", "descending" and typos all sort descending rather
// than erroring.
func ResolveSort(fields FieldSet, sortBy, sortDir string) (Sort, error) {
	field, ok := fields.Resolve(sortBy)
	if !ok {
		return Sort{}, errs.NewInvalidSortFieldError(sortBy)
	}

	return Sort{
		Column:     field.Column,
		Descending: !strings.EqualFold(sortDir, SortDirAsc),
	}, nil
}
