package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/wrenchworks/autoservice/internal/domain"
	"github.com/wrenchworks/autoservice/internal/repository"
	"github.com/wrenchworks/autoservice/internal/server"
)

// AnalyticsService fronts the reporting queries. All request-shaped
// input (raw filters, sort tokens) is coerced and validated here, so
// the repository only ever sees typed values and registered columns.
type AnalyticsService struct {
	server    *server.Server
	analytics *repository.AnalyticsRepository
}

func NewAnalyticsService(s *server.Server, repos *repository.Repositories) *AnalyticsService {
	return &AnalyticsService{
		server:    s,
		analytics: repos.Analytics,
	}
}

// FilterOrders coerces the raw filter, resolves the sort directive and
// returns one page of matching orders.
func (s *AnalyticsService) FilterOrders(ctx context.Context, raw domain.RawOrderFilter, sortBy, sortDir string, page domain.Page) ([]domain.Order, error) {
	filter, err := domain.ParseOrderFilter(raw)
	if err != nil {
		return nil, err
	}

	sort, err := domain.ResolveSort(domain.OrderFields, sortBy, sortDir)
	if err != nil {
		return nil, err
	}

	return s.analytics.ListFiltered(ctx, filter, sort, page)
}

// OrdersWithDetails returns one page of orders with their car and
// mechanic attached, optionally restricted by issue date range.
func (s *AnalyticsService) OrdersWithDetails(ctx context.Context, issueFrom, issueTo, sortBy, sortDir string, page domain.Page) ([]domain.OrderDetails, error) {
	issue, err := domain.ParseDateRange(issueFrom, issueTo)
	if err != nil {
		return nil, err
	}

	sort, err := domain.ResolveSort(domain.OrderFields, sortBy, sortDir)
	if err != nil {
		return nil, err
	}

	return s.analytics.ListWithDetails(ctx, issue, sort, page)
}

// RevenueByMechanic returns the per-mechanic revenue report, optionally
// restricted by issue date, ordered by the summed revenue. Only the
// direction token is caller-controlled; the ordering expression is
// fixed.
func (s *AnalyticsService) RevenueByMechanic(ctx context.Context, issueFrom, issueTo, sortDir string, page domain.Page) ([]domain.MechanicRevenue, error) {
	issue, err := domain.ParseDateRange(issueFrom, issueTo)
	if err != nil {
		return nil, err
	}

	sort := domain.Sort{Descending: !strings.EqualFold(sortDir, domain.SortDirAsc)}
	return s.analytics.RevenueByMechanic(ctx, issue, sort, page)
}

// RevenueByMechanicCSV renders the revenue report as CSV. Revenue is
// written with the decimal's own formatting, so no precision is lost on
// export.
func (s *AnalyticsService) RevenueByMechanicCSV(ctx context.Context, issueFrom, issueTo, sortDir string, page domain.Page) ([]byte, error) {
	report, err := s.RevenueByMechanic(ctx, issueFrom, issueTo, sortDir, page)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"mechanic_id", "full_name", "revenue", "orders_count"}); err != nil {
		return nil, err
	}
	for _, row := range report {
		record := []string{
			strconv.FormatInt(row.MechanicID, 10),
			row.FullName,
			row.Revenue.String(),
			strconv.FormatInt(row.OrdersCount, 10),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SearchMeta returns orders whose meta document matches the pattern.
func (s *AnalyticsService) SearchMeta(ctx context.Context, pattern string, page domain.Page) ([]domain.Order, error) {
	return s.analytics.SearchMeta(ctx, pattern, page)
}

// CloseOverdue marks overdue orders done and reports how many rows were
// touched.
func (s *AnalyticsService) CloseOverdue(ctx context.Context) (int64, error) {
	return s.analytics.CloseOverdue(ctx)
}
