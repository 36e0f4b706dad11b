package handler

import (
	"github.com/wrenchworks/autoservice/internal/domain"
)

// StatusResponse is the ack body for deletions.
type StatusResponse struct {
	Status string `json:"status"`
}

// OrderResponse is the wire form of an order. Cost is rendered as a
// JSON number at the boundary only; everything upstream keeps it in
// decimal.
type OrderResponse struct {
	ID             int64          `json:"id"`
	CarID          int64          `json:"car_id"`
	MechanicID     int64          `json:"mechanic_id"`
	Cost           float64        `json:"cost"`
	IssueDate      string         `json:"issue_date"`
	WorkType       string         `json:"work_type"`
	PlannedEndDate string         `json:"planned_end_date"`
	ActualEndDate  *string        `json:"actual_end_date"`
	Status         string         `json:"status"`
	Meta           map[string]any `json:"meta"`
}

func newOrderResponse(o domain.Order) OrderResponse {
	res := OrderResponse{
		ID:             o.ID,
		CarID:          o.CarID,
		MechanicID:     o.MechanicID,
		Cost:           o.Cost.InexactFloat64(),
		IssueDate:      o.IssueDate.Format(domain.DateLayout),
		WorkType:       o.WorkType,
		PlannedEndDate: o.PlannedEndDate.Format(domain.DateLayout),
		Status:         o.Status,
		Meta:           o.Meta,
	}
	if o.ActualEndDate != nil {
		actual := o.ActualEndDate.Format(domain.DateLayout)
		res.ActualEndDate = &actual
	}
	return res
}

func newOrderResponses(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, newOrderResponse(o))
	}
	return res
}

// OrderDetailsResponse is an order with its car and mechanic inlined.
type OrderDetailsResponse struct {
	OrderResponse
	Car      domain.Car      `json:"car"`
	Mechanic domain.Mechanic `json:"mechanic"`
}

func newOrderDetailsResponses(details []domain.OrderDetails) []OrderDetailsResponse {
	res := make([]OrderDetailsResponse, 0, len(details))
	for _, d := range details {
		res = append(res, OrderDetailsResponse{
			OrderResponse: newOrderResponse(d.Order),
			Car:           d.Car,
			Mechanic:      d.Mechanic,
		})
	}
	return res
}

// MechanicRevenueResponse is one row of the revenue report.
type MechanicRevenueResponse struct {
	MechanicID  int64   `json:"mechanic_id"`
	FullName    string  `json:"full_name"`
	Revenue     float64 `json:"revenue"`
	OrdersCount int64   `json:"orders_count"`
}

func newMechanicRevenueResponses(report []domain.MechanicRevenue) []MechanicRevenueResponse {
	res := make([]MechanicRevenueResponse, 0, len(report))
	for _, row := range report {
		res = append(res, MechanicRevenueResponse{
			MechanicID:  row.MechanicID,
			FullName:    row.FullName,
			Revenue:     row.Revenue.InexactFloat64(),
			OrdersCount: row.OrdersCount,
		})
	}
	return res
}

// CloseOverdueResponse reports how many orders the bulk close touched.
type CloseOverdueResponse struct {
	Updated int64 `json:"updated"`
}
