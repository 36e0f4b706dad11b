package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patch types carry partial updates. Each field is an explicit member
// of the entity's schema; a nil (or unset Optional) field is left
// untouched. There is no "apply whatever keys arrived" path.

// CarPatch is a partial update of a car. No car field is nullable, so
// plain pointers express present vs absent.
type CarPatch struct {
	Number    *string
	Brand     *string
	Year      *int
	OwnerName *string
}

// IsZero reports whether the patch changes nothing.
func (p CarPatch) IsZero() bool {
	return p.Number == nil && p.Brand == nil && p.Year == nil && p.OwnerName == nil
}

// MechanicPatch is a partial update of a mechanic.
type MechanicPatch struct {
	EmployeeNo      *string
	FullName        *string
	ExperienceYears *int
	Grade           *int
}

// IsZero reports whether the patch changes nothing.
func (p MechanicPatch) IsZero() bool {
	return p.EmployeeNo == nil && p.FullName == nil && p.ExperienceYears == nil && p.Grade == nil
}

// OrderPatch is a partial update of an order. ActualEndDate is the one
// field where null is a meaningful write (reopening a finished order),
// so it uses the tri-state Optional. A nil Meta means untouched; a
// present Meta replaces the whole document.
type OrderPatch struct {
	CarID          *int64
	MechanicID     *int64
	Cost           *decimal.Decimal
	IssueDate      *time.Time
	WorkType       *string
	PlannedEndDate *time.Time
	ActualEndDate  Optional[time.Time]
	Status         *string
	Meta           map[string]any
}

// IsZero reports whether the patch changes nothing.
func (p OrderPatch) IsZero() bool {
	return p.CarID == nil && p.MechanicID == nil && p.Cost == nil &&
		p.IssueDate == nil && p.WorkType == nil && p.PlannedEndDate == nil &&
		!p.ActualEndDate.Set && p.Status == nil && p.Meta == nil
}
