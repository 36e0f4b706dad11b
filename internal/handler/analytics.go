package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wrenchworks/autoservice/internal/domain"
	"github.com/wrenchworks/autoservice/internal/server"
	"github.com/wrenchworks/autoservice/internal/service"
	"github.com/wrenchworks/autoservice/internal/validation"
)

// AnalyticsHandler serves the reporting routes: the dynamic order
// listing, the joined detail listing, the revenue report (JSON and CSV),
// the meta pattern search, and the bulk overdue close.
type AnalyticsHandler struct {
	Handler
	analytics *service.AnalyticsService
}

func NewAnalyticsHandler(s *server.Server, services *service.Services) *AnalyticsHandler {
	return &AnalyticsHandler{
		Handler:   NewHandler(s),
		analytics: services.Analytics,
	}
}

// OrdersFilterQuery carries the optional filters of the dynamic listing
// alongside the shared paging parameters. Filter values stay as raw
// strings here; coercion happens in the service where failures map to
// INVALID_FILTER_VALUE.
type OrdersFilterQuery struct {
	ListQuery
	Brand     string `query:"brand"`
	MinCost   string `query:"min_cost"`
	MaxCost   string `query:"max_cost"`
	GradeGTE  string `query:"grade_gte"`
	IssueFrom string `query:"issue_from"`
	IssueTo   string `query:"issue_to"`
}

func (q *OrdersFilterQuery) Validate() error {
	q.applyDefaults()
	return validation.Struct(q)
}

func (q OrdersFilterQuery) rawFilter() domain.RawOrderFilter {
	return domain.RawOrderFilter{
		Brand:     q.Brand,
		MinCost:   q.MinCost,
		MaxCost:   q.MaxCost,
		GradeGTE:  q.GradeGTE,
		IssueFrom: q.IssueFrom,
		IssueTo:   q.IssueTo,
	}
}

// OrdersWithDetailsQuery restricts the joined listing by issue date.
type OrdersWithDetailsQuery struct {
	ListQuery
	IssueFrom string `query:"issue_from"`
	IssueTo   string `query:"issue_to"`
}

func (q *OrdersWithDetailsQuery) Validate() error {
	q.applyDefaults()
	return validation.Struct(q)
}

// RevenueQuery pages the revenue report, optionally restricted by issue
// date. Ordering is by summed revenue only; the direction defaults to
// descending (top earners first).
type RevenueQuery struct {
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
	SortDir   string `query:"sort_dir"`
	IssueFrom string `query:"issue_from"`
	IssueTo   string `query:"issue_to"`
}

func (q *RevenueQuery) Validate() error {
	if q.Limit == 0 {
		q.Limit = 100
	}
	if q.SortDir == "" {
		q.SortDir = "desc"
	}
	return validation.Struct(q)
}

func (q RevenueQuery) page() domain.Page {
	return domain.Page{Limit: q.Limit, Offset: q.Offset}
}

// SearchMetaQuery carries the POSIX pattern for the meta search.
type SearchMetaQuery struct {
	Pattern string `query:"pattern" validate:"required"`
	Limit   int    `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset  int    `query:"offset" validate:"omitempty,min=0"`
}

func (q *SearchMetaQuery) Validate() error {
	if q.Limit == 0 {
		q.Limit = 50
	}
	return validation.Struct(q)
}

// CloseOverdueRequest is the empty payload of the bulk close.
type CloseOverdueRequest struct{}

func (r *CloseOverdueRequest) Validate() error {
	return nil
}

func (h *AnalyticsHandler) FilterOrders(c echo.Context, req *OrdersFilterQuery) ([]OrderResponse, error) {
	orders, err := h.analytics.FilterOrders(c.Request().Context(),
		req.rawFilter(), req.SortBy, req.SortDir, req.Page())
	if err != nil {
		return nil, err
	}
	return newOrderResponses(orders), nil
}

func (h *AnalyticsHandler) OrdersWithDetails(c echo.Context, req *OrdersWithDetailsQuery) ([]OrderDetailsResponse, error) {
	details, err := h.analytics.OrdersWithDetails(c.Request().Context(),
		req.IssueFrom, req.IssueTo, req.SortBy, req.SortDir, req.Page())
	if err != nil {
		return nil, err
	}
	return newOrderDetailsResponses(details), nil
}

func (h *AnalyticsHandler) RevenueByMechanic(c echo.Context, req *RevenueQuery) ([]MechanicRevenueResponse, error) {
	report, err := h.analytics.RevenueByMechanic(c.Request().Context(),
		req.IssueFrom, req.IssueTo, req.SortDir, req.page())
	if err != nil {
		return nil, err
	}
	return newMechanicRevenueResponses(report), nil
}

func (h *AnalyticsHandler) RevenueByMechanicCSV(c echo.Context, req *RevenueQuery) ([]byte, error) {
	return h.analytics.RevenueByMechanicCSV(c.Request().Context(),
		req.IssueFrom, req.IssueTo, req.SortDir, req.page())
}

func (h *AnalyticsHandler) SearchMeta(c echo.Context, req *SearchMetaQuery) ([]OrderResponse, error) {
	orders, err := h.analytics.SearchMeta(c.Request().Context(),
		req.Pattern, domain.Page{Limit: req.Limit, Offset: req.Offset})
	if err != nil {
		return nil, err
	}
	return newOrderResponses(orders), nil
}

func (h *AnalyticsHandler) CloseOverdue(c echo.Context, req *CloseOverdueRequest) (CloseOverdueResponse, error) {
	updated, err := h.analytics.CloseOverdue(c.Request().Context())
	if err != nil {
		return CloseOverdueResponse{}, err
	}
	return CloseOverdueResponse{Updated: updated}, nil
}
