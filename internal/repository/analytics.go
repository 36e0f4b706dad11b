package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/wrenchworks/autoservice/internal/domain"
	"github.com/wrenchworks/autoservice/internal/server"
)

// AnalyticsRepository runs the reporting queries: filtered listings,
// joined detail listings, revenue aggregation, meta pattern search and
// the bulk overdue-close. Query text is assembled from the closed field
// registry plus literal fragments below; every request value travels as
// a positional argument.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository constructs an AnalyticsRepository from the shared pool.
func NewAnalyticsRepository(s *server.Server) *AnalyticsRepository {
	return &AnalyticsRepository{pool: s.DB.Pool}
}

// buildFilteredOrdersQuery assembles the dynamic listing query. Joins
// are added only when a predicate needs the joined table, and at most
// once each. Predicates are ANDed in a fixed order; bounds are
// inclusive.
func buildFilteredOrdersQuery(filter domain.OrderFilter, sort domain.Sort, page domain.Page) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, 8)

	sb.WriteString("SELECT ")
	sb.WriteString(orderColumns)
	sb.WriteString(" FROM orders")

	if filter.Brand != nil {
		sb.WriteString(" JOIN cars ON orders.car_id = cars.id")
	}
	if filter.GradeGTE != nil {
		sb.WriteString(" JOIN mechanics ON orders.mechanic_id = mechanics.id")
	}

	conds := make([]string, 0, 5)
	if filter.Brand != nil {
		args = append(args, *filter.Brand)
		conds = append(conds, fmt.Sprintf("cars.brand = $%d", len(args)))
	}
	if filter.MinCost != nil {
		args = append(args, *filter.MinCost)
		conds = append(conds, fmt.Sprintf("orders.cost >= $%d", len(args)))
	}
	if filter.MaxCost != nil {
		args = append(args, *filter.MaxCost)
		conds = append(conds, fmt.Sprintf("orders.cost <= $%d", len(args)))
	}
	if filter.GradeGTE != nil {
		args = append(args, *filter.GradeGTE)
		conds = append(conds, fmt.Sprintf("mechanics.grade >= $%d", len(args)))
	}
	appendIssueRange(filter.Issue, &conds, &args)

	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	args = append(args, page.Limit, page.Offset)
	fmt.Fprintf(&sb, " ORDER BY %s %s LIMIT $%d OFFSET $%d",
		sort.Column, sort.Direction(), len(args)-1, len(args))

	return sb.String(), args
}

func appendIssueRange(issue domain.DateRange, conds *[]string, args *[]any) {
	if issue.From != nil {
		*args = append(*args, *issue.From)
		*conds = append(*conds, fmt.Sprintf("orders.issue_date >= $%d", len(*args)))
	}
	if issue.To != nil {
		*args = append(*args, *issue.To)
		*conds = append(*conds, fmt.Sprintf("orders.issue_date <= $%d", len(*args)))
	}
}

// ListFiltered returns orders matching the filter, sorted and paginated.
func (r *AnalyticsRepository) ListFiltered(ctx context.Context, filter domain.OrderFilter, sort domain.Sort, page domain.Page) ([]domain.Order, error) {
	query, args := buildFilteredOrdersQuery(filter, sort, page)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

// buildOrderDetailsQuery assembles the single-round-trip joined listing.
// Both joins are unconditional: every order has exactly one car and one
// mechanic.
func buildOrderDetailsQuery(issue domain.DateRange, sort domain.Sort, page domain.Page) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, 4)

	sb.WriteString("SELECT ")
	sb.WriteString(orderColumns)
	sb.WriteString(", ")
	sb.WriteString(carColumns)
	sb.WriteString(", ")
	sb.WriteString(mechanicColumns)
	sb.WriteString(" FROM orders")
	sb.WriteString(" JOIN cars ON orders.car_id = cars.id")
	sb.WriteString(" JOIN mechanics ON orders.mechanic_id = mechanics.id")

	conds := make([]string, 0, 2)
	appendIssueRange(issue, &conds, &args)
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	args = append(args, page.Limit, page.Offset)
	fmt.Fprintf(&sb, " ORDER BY %s %s LIMIT $%d OFFSET $%d",
		sort.Column, sort.Direction(), len(args)-1, len(args))

	return sb.String(), args
}

// ListWithDetails returns orders with their car and mechanic attached,
// fetched in one joined query.
func (r *AnalyticsRepository) ListWithDetails(ctx context.Context, issue domain.DateRange, sort domain.Sort, page domain.Page) ([]domain.OrderDetails, error) {
	query, args := buildOrderDetailsQuery(issue, sort, page)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := []domain.OrderDetails{}
	for rows.Next() {
		var (
			d        domain.OrderDetails
			costText string
			metaRaw  []byte
		)
		err := rows.Scan(
			&d.Order.ID, &d.Order.CarID, &d.Order.MechanicID, &costText,
			&d.Order.IssueDate, &d.Order.WorkType, &d.Order.PlannedEndDate,
			&d.Order.ActualEndDate, &d.Order.Status, &metaRaw,
			&d.Car.ID, &d.Car.Number, &d.Car.Brand, &d.Car.Year, &d.Car.OwnerName,
			&d.Mechanic.ID, &d.Mechanic.EmployeeNo, &d.Mechanic.FullName,
			&d.Mechanic.ExperienceYears, &d.Mechanic.Grade,
		)
		if err != nil {
			return nil, err
		}
		if d.Order.Cost, err = decimal.NewFromString(costText); err != nil {
			return nil, fmt.Errorf("parsing order cost: %w", err)
		}
		if err := json.Unmarshal(metaRaw, &d.Order.Meta); err != nil {
			return nil, fmt.Errorf("unmarshalling order meta: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// buildRevenueQuery assembles the revenue-by-mechanic aggregation. Only
// mechanics with at least one order (in the range, when given) appear;
// ordering is by the summed revenue itself.
func buildRevenueQuery(issue domain.DateRange, sort domain.Sort, page domain.Page) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, 4)

	sb.WriteString(`SELECT mechanics.id, mechanics.full_name,
		COALESCE(SUM(orders.cost), 0)::text, COUNT(orders.id)
		FROM mechanics
		JOIN orders ON orders.mechanic_id = mechanics.id`)

	conds := make([]string, 0, 2)
	appendIssueRange(issue, &conds, &args)
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	args = append(args, page.Limit, page.Offset)
	fmt.Fprintf(&sb, ` GROUP BY mechanics.id, mechanics.full_name
		ORDER BY SUM(orders.cost) %s LIMIT $%d OFFSET $%d`,
		sort.Direction(), len(args)-1, len(args))

	return sb.String(), args
}

// RevenueByMechanic sums order costs per mechanic. The sum stays in
// numeric all the way to the decimal scan.
func (r *AnalyticsRepository) RevenueByMechanic(ctx context.Context, issue domain.DateRange, sort domain.Sort, page domain.Page) ([]domain.MechanicRevenue, error) {
	query, args := buildRevenueQuery(issue, sort, page)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := []domain.MechanicRevenue{}
	for rows.Next() {
		var (
			row         domain.MechanicRevenue
			revenueText string
		)
		if err := rows.Scan(&row.MechanicID, &row.FullName, &revenueText, &row.OrdersCount); err != nil {
			return nil, err
		}
		if row.Revenue, err = decimal.NewFromString(revenueText); err != nil {
			return nil, fmt.Errorf("parsing mechanic revenue: %w", err)
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// SearchMeta returns orders whose meta document, rendered as text,
// matches the POSIX regular expression. Pattern compilation happens in
// the database; a bad pattern surfaces as SQLSTATE 2201B and is mapped
// to INVALID_PATTERN upstream.
func (r *AnalyticsRepository) SearchMeta(ctx context.Context, pattern string, page domain.Page) ([]domain.Order, error) {
	query := "SELECT " + orderColumns +
		" FROM orders WHERE orders.meta::text ~ $1 ORDER BY orders.id ASC LIMIT $2 OFFSET $3"

	rows, err := r.pool.Query(ctx, query, pattern, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

// CloseOverdue marks every order that finished after its planned end
// date as done, in one set-based statement. It returns the number of
// rows the UPDATE touched. Already-done overdue rows are rewritten too;
// the operation is idempotent in effect either way.
func (r *AnalyticsRepository) CloseOverdue(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $1
		 WHERE actual_end_date IS NOT NULL AND actual_end_date > planned_end_date`,
		domain.StatusDone,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
