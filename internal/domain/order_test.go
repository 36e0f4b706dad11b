package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOrder_IsOverdue(t *testing.T) {
	planned := date("2024-05-10")

	open := Order{PlannedEndDate: planned}
	assert.False(t, open.IsOverdue(), "unfinished orders are never overdue")

	onTime := date("2024-05-10")
	finishedOnTime := Order{PlannedEndDate: planned, ActualEndDate: &onTime}
	assert.False(t, finishedOnTime.IsOverdue(), "finishing on the planned day is not overdue")

	late := date("2024-05-11")
	finishedLate := Order{PlannedEndDate: planned, ActualEndDate: &late}
	assert.True(t, finishedLate.IsOverdue())
}

func TestPatch_IsZero(t *testing.T) {
	assert.True(t, CarPatch{}.IsZero())
	assert.True(t, MechanicPatch{}.IsZero())
	assert.True(t, OrderPatch{}.IsZero())

	brand := "Lada"
	assert.False(t, CarPatch{Brand: &brand}.IsZero())

	// A present-null actual_end_date is a change, not an empty patch.
	cleared := OrderPatch{ActualEndDate: Optional[time.Time]{Set: true}}
	assert.False(t, cleared.IsZero())

	assert.False(t, OrderPatch{Meta: map[string]any{}}.IsZero())
}
