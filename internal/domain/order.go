package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Orders start as StatusNew and may transition to the
// terminal StatusDone when closed as completed.
const (
	StatusNew  = "new"
	StatusDone = "done"
)

// Order is a work order: one car, one mechanic, a cost in exact decimal
// arithmetic, and a free-form meta document (symptoms, notes, parts).
//
// ActualEndDate is nil until the work is finished. Meta has no fixed
// schema; it is opaque to everything except the text pattern search.
type Order struct {
	ID             int64
	CarID          int64
	MechanicID     int64
	Cost           decimal.Decimal
	IssueDate      time.Time
	WorkType       string
	PlannedEndDate time.Time
	ActualEndDate  *time.Time
	Status         string
	Meta           map[string]any
}

// IsOverdue reports whether the order finished after its planned end
// date. Orders without an actual end date are never overdue.
func (o Order) IsOverdue() bool {
	return o.ActualEndDate != nil && o.ActualEndDate.After(o.PlannedEndDate)
}

// OrderDetails is an order with its related car and mechanic attached.
// Both are always present: the foreign keys are non-nullable.
type OrderDetails struct {
	Order
	Car      Car
	Mechanic Mechanic
}

// MechanicRevenue is one row of the revenue-by-mechanic report.
// Revenue is summed in decimal arithmetic; it is zero, never unset,
// for mechanics that appear in the report.
type MechanicRevenue struct {
	MechanicID  int64
	FullName    string
	Revenue     decimal.Decimal
	OrdersCount int64
}
