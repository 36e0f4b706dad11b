package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/wrenchworks/autoservice/internal/domain"
	"github.com/wrenchworks/autoservice/internal/server"
	"github.com/wrenchworks/autoservice/internal/service"
	"github.com/wrenchworks/autoservice/internal/validation"
)

// OrderHandler serves the work-order CRUD routes.
type OrderHandler struct {
	Handler
	orders *service.OrderService
}

func NewOrderHandler(s *server.Server, services *service.Services) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),
		orders:  services.Orders,
	}
}

// OrderCreateRequest is the payload for opening a work order. Dates
// arrive as YYYY-MM-DD strings; the parsed values are cached during
// validation so the handler never re-parses.
type OrderCreateRequest struct {
	CarID          int64           `json:"car_id" validate:"required,gt=0"`
	MechanicID     int64           `json:"mechanic_id" validate:"required,gt=0"`
	Cost           decimal.Decimal `json:"cost"`
	IssueDate      string          `json:"issue_date" validate:"required"`
	WorkType       string          `json:"work_type" validate:"required,max=128"`
	PlannedEndDate string          `json:"planned_end_date" validate:"required"`
	ActualEndDate  *string         `json:"actual_end_date"`
	Status         string          `json:"status" validate:"omitempty,max=32"`
	Meta           map[string]any  `json:"meta"`

	issueDate      time.Time
	plannedEndDate time.Time
	actualEndDate  *time.Time
}

func (r *OrderCreateRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var custom validation.CustomValidationErrors
	if r.Cost.IsNegative() {
		custom = append(custom, validation.CustomValidationError{
			Field:   "cost",
			Message: "must be at least 0",
		})
	}

	custom = parseDateField(custom, "issue_date", r.IssueDate, &r.issueDate)
	custom = parseDateField(custom, "planned_end_date", r.PlannedEndDate, &r.plannedEndDate)
	if r.ActualEndDate != nil {
		var actual time.Time
		if custom = parseDateField(custom, "actual_end_date", *r.ActualEndDate, &actual); len(custom) == 0 {
			r.actualEndDate = &actual
		}
	}

	if len(custom) > 0 {
		return custom
	}
	return nil
}

// parseDateField parses value into dst, appending a field error on failure.
func parseDateField(custom validation.CustomValidationErrors, field, value string, dst *time.Time) validation.CustomValidationErrors {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return append(custom, validation.CustomValidationError{
			Field:   field,
			Message: "must be a date in YYYY-MM-DD format",
		})
	}
	*dst = t
	return custom
}

// OrderUpdateRequest is the partial-update payload. ActualEndDate is
// tri-state: absent leaves it alone, null clears it, a date sets it.
type OrderUpdateRequest struct {
	IDParam
	CarID          *int64                  `json:"car_id" validate:"omitempty,gt=0"`
	MechanicID     *int64                  `json:"mechanic_id" validate:"omitempty,gt=0"`
	Cost           *decimal.Decimal        `json:"cost"`
	IssueDate      *string                 `json:"issue_date"`
	WorkType       *string                 `json:"work_type" validate:"omitempty,max=128"`
	PlannedEndDate *string                 `json:"planned_end_date"`
	ActualEndDate  domain.Optional[string] `json:"actual_end_date"`
	Status         *string                 `json:"status" validate:"omitempty,max=32"`
	Meta           map[string]any          `json:"meta"`

	issueDate      *time.Time
	plannedEndDate *time.Time
	actualEndDate  domain.Optional[time.Time]
}

func (r *OrderUpdateRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var custom validation.CustomValidationErrors
	if r.Cost != nil && r.Cost.IsNegative() {
		custom = append(custom, validation.CustomValidationError{
			Field:   "cost",
			Message: "must be at least 0",
		})
	}

	if r.IssueDate != nil {
		var t time.Time
		if custom = parseDateField(custom, "issue_date", *r.IssueDate, &t); len(custom) == 0 {
			r.issueDate = &t
		}
	}
	if r.PlannedEndDate != nil {
		var t time.Time
		if custom = parseDateField(custom, "planned_end_date", *r.PlannedEndDate, &t); len(custom) == 0 {
			r.plannedEndDate = &t
		}
	}
	if r.ActualEndDate.Set {
		r.actualEndDate = domain.Optional[time.Time]{Set: true}
		if r.ActualEndDate.Valid {
			var t time.Time
			if custom = parseDateField(custom, "actual_end_date", r.ActualEndDate.Value, &t); len(custom) == 0 {
				r.actualEndDate.Valid = true
				r.actualEndDate.Value = t
			}
		}
	}

	if len(custom) > 0 {
		return custom
	}
	return nil
}

func (r *OrderUpdateRequest) patch() domain.OrderPatch {
	return domain.OrderPatch{
		CarID:          r.CarID,
		MechanicID:     r.MechanicID,
		Cost:           r.Cost,
		IssueDate:      r.issueDate,
		WorkType:       r.WorkType,
		PlannedEndDate: r.plannedEndDate,
		ActualEndDate:  r.actualEndDate,
		Status:         r.Status,
		Meta:           r.Meta,
	}
}

func (h *OrderHandler) Create(c echo.Context, req *OrderCreateRequest) (OrderResponse, error) {
	order, err := h.orders.Create(c.Request().Context(), domain.Order{
		CarID:          req.CarID,
		MechanicID:     req.MechanicID,
		Cost:           req.Cost,
		IssueDate:      req.issueDate,
		WorkType:       req.WorkType,
		PlannedEndDate: req.plannedEndDate,
		ActualEndDate:  req.actualEndDate,
		Status:         req.Status,
		Meta:           req.Meta,
	})
	if err != nil {
		return OrderResponse{}, err
	}
	return newOrderResponse(order), nil
}

func (h *OrderHandler) Get(c echo.Context, req *IDParam) (OrderResponse, error) {
	order, err := h.orders.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return OrderResponse{}, err
	}
	return newOrderResponse(order), nil
}

func (h *OrderHandler) List(c echo.Context, req *ListQuery) ([]OrderResponse, error) {
	orders, err := h.orders.List(c.Request().Context(), req.SortBy, req.SortDir, req.Page())
	if err != nil {
		return nil, err
	}
	return newOrderResponses(orders), nil
}

func (h *OrderHandler) Update(c echo.Context, req *OrderUpdateRequest) (OrderResponse, error) {
	order, err := h.orders.Update(c.Request().Context(), req.ID, req.patch())
	if err != nil {
		return OrderResponse{}, err
	}
	return newOrderResponse(order), nil
}

func (h *OrderHandler) Delete(c echo.Context, req *IDParam) (StatusResponse, error) {
	if err := h.orders.Delete(c.Request().Context(), req.ID); err != nil {
		return StatusResponse{}, err
	}
	return StatusResponse{Status: "ok"}, nil
}
