package handler

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenchworks/autoservice/internal/domain"
)

func TestNewOrderResponse(t *testing.T) {
	issue, _ := time.Parse(domain.DateLayout, "2024-03-01")
	planned, _ := time.Parse(domain.DateLayout, "2024-03-15")
	actual, _ := time.Parse(domain.DateLayout, "2024-03-20")

	order := domain.Order{
		ID:             7,
		CarID:          1,
		MechanicID:     2,
		Cost:           decimal.RequireFromString("1250.50"),
		IssueDate:      issue,
		WorkType:       "engine",
		PlannedEndDate: planned,
		ActualEndDate:  &actual,
		Status:         domain.StatusDone,
		Meta:           map[string]any{"symptom": "knocking"},
	}

	res := newOrderResponse(order)

	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, 1250.50, res.Cost)
	assert.Equal(t, "2024-03-01", res.IssueDate)
	assert.Equal(t, "2024-03-15", res.PlannedEndDate)
	require.NotNil(t, res.ActualEndDate)
	assert.Equal(t, "2024-03-20", *res.ActualEndDate)
	assert.Equal(t, "done", res.Status)
}

func TestNewOrderResponse_NullActualEndDate(t *testing.T) {
	res := newOrderResponse(domain.Order{Cost: decimal.Zero})
	assert.Nil(t, res.ActualEndDate)
}

func TestNewOrderResponses_EmptySliceNotNull(t *testing.T) {
	res := newOrderResponses(nil)
	assert.NotNil(t, res, "empty listings serialize as [], not null")
	assert.Len(t, res, 0)
}
