package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/wrenchworks/autoservice/internal/domain"
	"github.com/wrenchworks/autoservice/internal/server"
)

// Cost is selected as text and parsed into decimal so money never
// passes through binary float.
const orderColumns = `orders.id, orders.car_id, orders.mechanic_id, orders.cost::text,
	orders.issue_date, orders.work_type, orders.planned_end_date, orders.actual_end_date,
	orders.status, orders.meta`

// OrderRepository persists orders.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository constructs an OrderRepository from the shared pool.
func NewOrderRepository(s *server.Server) *OrderRepository {
	return &OrderRepository{pool: s.DB.Pool}
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		order    domain.Order
		costText string
		metaRaw  []byte
	)

	err := row.Scan(&order.ID, &order.CarID, &order.MechanicID, &costText,
		&order.IssueDate, &order.WorkType, &order.PlannedEndDate, &order.ActualEndDate,
		&order.Status, &metaRaw)
	if err != nil {
		return domain.Order{}, err
	}

	order.Cost, err = decimal.NewFromString(costText)
	if err != nil {
		return domain.Order{}, fmt.Errorf("parsing order cost: %w", err)
	}

	if err := json.Unmarshal(metaRaw, &order.Meta); err != nil {
		return domain.Order{}, fmt.Errorf("unmarshalling order meta: %w", err)
	}

	return order, nil
}

func marshalMeta(meta map[string]any) ([]byte, error) {
	if meta == nil {
		meta = map[string]any{}
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshalling order meta: %w", err)
	}
	return raw, nil
}

// Create inserts an order and returns it with its generated id.
func (r *OrderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	metaRaw, err := marshalMeta(order.Meta)
	if err != nil {
		return domain.Order{}, err
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO orders (car_id, mechanic_id, cost, issue_date, work_type,
		                     planned_end_date, actual_end_date, status, meta)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+orderColumns,
		order.CarID, order.MechanicID, order.Cost, order.IssueDate, order.WorkType,
		order.PlannedEndDate, order.ActualEndDate, order.Status, metaRaw,
	)
	return scanOrder(row)
}

// GetByID fetches one order.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (domain.Order, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE orders.id = $1", id)
	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("table:orders: %w", pgx.ErrNoRows)
	}
	return order, err
}

// List returns a sorted, paginated window over all orders.
func (r *OrderRepository) List(ctx context.Context, sort domain.Sort, page domain.Page) ([]domain.Order, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM orders ORDER BY %s %s LIMIT $1 OFFSET $2",
		orderColumns, sort.Column, sort.Direction(),
	)

	rows, err := r.pool.Query(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// Update applies a partial update and returns the updated order.
func (r *OrderRepository) Update(ctx context.Context, id int64, patch domain.OrderPatch) (domain.Order, error) {
	if patch.IsZero() {
		return r.GetByID(ctx, id)
	}

	sets := make([]string, 0, 9)
	args := make([]any, 0, 10)

	if patch.CarID != nil {
		args = append(args, *patch.CarID)
		sets = append(sets, fmt.Sprintf("car_id = $%d", len(args)))
	}
	if patch.MechanicID != nil {
		args = append(args, *patch.MechanicID)
		sets = append(sets, fmt.Sprintf("mechanic_id = $%d", len(args)))
	}
	if patch.Cost != nil {
		args = append(args, *patch.Cost)
		sets = append(sets, fmt.Sprintf("cost = $%d", len(args)))
	}
	if patch.IssueDate != nil {
		args = append(args, *patch.IssueDate)
		sets = append(sets, fmt.Sprintf("issue_date = $%d", len(args)))
	}
	if patch.WorkType != nil {
		args = append(args, *patch.WorkType)
		sets = append(sets, fmt.Sprintf("work_type = $%d", len(args)))
	}
	if patch.PlannedEndDate != nil {
		args = append(args, *patch.PlannedEndDate)
		sets = append(sets, fmt.Sprintf("planned_end_date = $%d", len(args)))
	}
	if patch.ActualEndDate.Set {
		// Present-null clears the column; present-value sets it.
		args = append(args, patch.ActualEndDate.Ptr())
		sets = append(sets, fmt.Sprintf("actual_end_date = $%d", len(args)))
	}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if patch.Meta != nil {
		metaRaw, err := marshalMeta(patch.Meta)
		if err != nil {
			return domain.Order{}, err
		}
		args = append(args, metaRaw)
		sets = append(sets, fmt.Sprintf("meta = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE orders SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), orderColumns,
	)

	order, err := scanOrder(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("table:orders: %w", pgx.ErrNoRows)
	}
	return order, err
}

// Delete removes an order.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:orders: %w", pgx.ErrNoRows)
	}
	return nil
}
