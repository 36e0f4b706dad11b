package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wrenchworks/autoservice/internal/errs"
)

// DateLayout is the wire format for all date values (date-only, no time
// component), matching the date columns in the store.
const DateLayout = "2006-01-02"

// ParseDate coerces a raw request value into a date. The field name is
// used in the INVALID_FILTER_VALUE error on failure.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errs.NewInvalidFilterValueError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// DateRange restricts orders by issue date. Both bounds are optional
// and inclusive.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDateRange coerces raw issue_from/issue_to request values.
// Empty strings contribute nothing.
func ParseDateRange(issueFrom, issueTo string) (DateRange, error) {
	var dr DateRange

	if issueFrom != "" {
		t, err := ParseDate("issue_from", issueFrom)
		if err != nil {
			return DateRange{}, err
		}
		dr.From = &t
	}
	if issueTo != "" {
		t, err := ParseDate("issue_to", issueTo)
		if err != nil {
			return DateRange{}, err
		}
		dr.To = &t
	}

	return dr, nil
}

// OrderFilter is the typed form of the optional listing filters. Each
// non-nil field becomes exactly one comparison predicate; all present
// predicates are combined with AND. Brand and GradeGTE reference joined
// entities (car and mechanic respectively).
type OrderFilter struct {
	Brand    *string
	MinCost  *decimal.Decimal
	MaxCost  *decimal.Decimal
	GradeGTE *int
	Issue    DateRange
}

// IsZero reports whether no filter is present.
func (f OrderFilter) IsZero() bool {
	return f.Brand == nil && f.MinCost == nil && f.MaxCost == nil &&
		f.GradeGTE == nil && f.Issue.From == nil && f.Issue.To == nil
}

// RawOrderFilter carries the loosely-typed filter parameters as they
// arrive in the request. Empty string means absent.
type RawOrderFilter struct {
	Brand     string
	MinCost   string
	MaxCost   string
	GradeGTE  string
	IssueFrom string
	IssueTo   string
}

// ParseOrderFilter coerces raw filter parameters into an OrderFilter.
// Every coercion failure is an INVALID_FILTER_VALUE naming the field,
// raised before any query construction.
func ParseOrderFilter(raw RawOrderFilter) (OrderFilter, error) {
	var filter OrderFilter

	if raw.Brand != "" {
		brand := raw.Brand
		filter.Brand = &brand
	}

	if raw.MinCost != "" {
		minCost, err := parseCost("min_cost", raw.MinCost)
		if err != nil {
			return OrderFilter{}, err
		}
		filter.MinCost = &minCost
	}
	if raw.MaxCost != "" {
		maxCost, err := parseCost("max_cost", raw.MaxCost)
		if err != nil {
			return OrderFilter{}, err
		}
		filter.MaxCost = &maxCost
	}

	if raw.GradeGTE != "" {
		grade, err := strconv.Atoi(raw.GradeGTE)
		if err != nil {
			return OrderFilter{}, errs.NewInvalidFilterValueError("grade_gte", "must be an integer")
		}
		if grade < 1 {
			return OrderFilter{}, errs.NewInvalidFilterValueError("grade_gte", "must be at least 1")
		}
		filter.GradeGTE = &grade
	}

	issue, err := ParseDateRange(raw.IssueFrom, raw.IssueTo)
	if err != nil {
		return OrderFilter{}, err
	}
	filter.Issue = issue

	return filter, nil
}

func parseCost(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, errs.NewInvalidFilterValueError(field, "must be a number")
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errs.NewInvalidFilterValueError(field, "must be at least 0")
	}
	return d, nil
}
