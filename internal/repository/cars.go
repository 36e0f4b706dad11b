package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wrenchworks/autoservice/internal/domain"
	"github.com/wrenchworks/autoservice/internal/server"
)

const carColumns = "cars.id, cars.number, cars.brand, cars.year, cars.owner_name"

// CarRepository persists cars.
type CarRepository struct {
	pool *pgxpool.Pool
}

// NewCarRepository constructs a CarRepository from the shared pool.
func NewCarRepository(s *server.Server) *CarRepository {
	return &CarRepository{pool: s.DB.Pool}
}

func scanCar(row pgx.Row) (domain.Car, error) {
	var car domain.Car
	err := row.Scan(&car.ID, &car.Number, &car.Brand, &car.Year, &car.OwnerName)
	return car, err
}

// Create inserts a car and returns it with its generated id.
func (r *CarRepository) Create(ctx context.Context, car domain.Car) (domain.Car, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO cars (number, brand, year, owner_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+carColumns,
		car.Number, car.Brand, car.Year, car.OwnerName,
	)
	return scanCar(row)
}

// GetByID fetches one car.
func (r *CarRepository) GetByID(ctx context.Context, id int64) (domain.Car, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+carColumns+" FROM cars WHERE cars.id = $1", id)
	car, err := scanCar(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Car{}, fmt.Errorf("table:cars: %w", pgx.ErrNoRows)
	}
	return car, err
}

// Exists reports whether a car with the given id exists.
func (r *CarRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM cars WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// List returns a sorted, paginated window over all cars.
func (r *CarRepository) List(ctx context.Context, sort domain.Sort, page domain.Page) ([]domain.Car, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM cars ORDER BY %s %s LIMIT $1 OFFSET $2",
		carColumns, sort.Column, sort.Direction(),
	)

	rows, err := r.pool.Query(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := []domain.Car{}
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

// Update applies a partial update and returns the updated car. An
// empty patch reads the current row instead of issuing an UPDATE.
func (r *CarRepository) Update(ctx context.Context, id int64, patch domain.CarPatch) (domain.Car, error) {
	if patch.IsZero() {
		return r.GetByID(ctx, id)
	}

	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if patch.Number != nil {
		args = append(args, *patch.Number)
		sets = append(sets, fmt.Sprintf("number = $%d", len(args)))
	}
	if patch.Brand != nil {
		args = append(args, *patch.Brand)
		sets = append(sets, fmt.Sprintf("brand = $%d", len(args)))
	}
	if patch.Year != nil {
		args = append(args, *patch.Year)
		sets = append(sets, fmt.Sprintf("year = $%d", len(args)))
	}
	if patch.OwnerName != nil {
		args = append(args, *patch.OwnerName)
		sets = append(sets, fmt.Sprintf("owner_name = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE cars SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), carColumns,
	)

	car, err := scanCar(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Car{}, fmt.Errorf("table:cars: %w", pgx.ErrNoRows)
	}
	return car, err
}

// Delete removes a car; its orders go with it via the FK cascade.
func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM cars WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:cars: %w", pgx.ErrNoRows)
	}
	return nil
}
