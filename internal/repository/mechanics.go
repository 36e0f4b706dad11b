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

const mechanicColumns = "mechanics.id, mechanics.employee_no, mechanics.full_name, mechanics.experience_years, mechanics.grade"

// MechanicRepository persists mechanics.
type MechanicRepository struct {
	pool *pgxpool.Pool
}

// NewMechanicRepository constructs a MechanicRepository from the shared pool.
func NewMechanicRepository(s *server.Server) *MechanicRepository {
	return &MechanicRepository{pool: s.DB.Pool}
}

func scanMechanic(row pgx.Row) (domain.Mechanic, error) {
	var mechanic domain.Mechanic
	err := row.Scan(&mechanic.ID, &mechanic.EmployeeNo, &mechanic.FullName,
		&mechanic.ExperienceYears, &mechanic.Grade)
	return mechanic, err
}

// Create inserts a mechanic and returns it with its generated id.
func (r *MechanicRepository) Create(ctx context.Context, mechanic domain.Mechanic) (domain.Mechanic, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO mechanics (employee_no, full_name, experience_years, grade)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+mechanicColumns,
		mechanic.EmployeeNo, mechanic.FullName, mechanic.ExperienceYears, mechanic.Grade,
	)
	return scanMechanic(row)
}

// GetByID fetches one mechanic.
func (r *MechanicRepository) GetByID(ctx context.Context, id int64) (domain.Mechanic, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+mechanicColumns+" FROM mechanics WHERE mechanics.id = $1", id)
	mechanic, err := scanMechanic(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Mechanic{}, fmt.Errorf("table:mechanics: %w", pgx.ErrNoRows)
	}
	return mechanic, err
}

// Exists reports whether a mechanic with the given id exists.
func (r *MechanicRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM mechanics WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// List returns a sorted, paginated window over all mechanics.
func (r *MechanicRepository) List(ctx context.Context, sort domain.Sort, page domain.Page) ([]domain.Mechanic, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM mechanics ORDER BY %s %s LIMIT $1 OFFSET $2",
		mechanicColumns, sort.Column, sort.Direction(),
	)

	rows, err := r.pool.Query(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mechanics := []domain.Mechanic{}
	for rows.Next() {
		mechanic, err := scanMechanic(rows)
		if err != nil {
			return nil, err
		}
		mechanics = append(mechanics, mechanic)
	}
	return mechanics, rows.Err()
}

// Update applies a partial update and returns the updated mechanic.
func (r *MechanicRepository) Update(ctx context.Context, id int64, patch domain.MechanicPatch) (domain.Mechanic, error) {
	if patch.IsZero() {
		return r.GetByID(ctx, id)
	}

	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if patch.EmployeeNo != nil {
		args = append(args, *patch.EmployeeNo)
		sets = append(sets, fmt.Sprintf("employee_no = $%d", len(args)))
	}
	if patch.FullName != nil {
		args = append(args, *patch.FullName)
		sets = append(sets, fmt.Sprintf("full_name = $%d", len(args)))
	}
	if patch.ExperienceYears != nil {
		args = append(args, *patch.ExperienceYears)
		sets = append(sets, fmt.Sprintf("experience_years = $%d", len(args)))
	}
	if patch.Grade != nil {
		args = append(args, *patch.Grade)
		sets = append(sets, fmt.Sprintf("grade = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE mechanics SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), mechanicColumns,
	)

	mechanic, err := scanMechanic(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Mechanic{}, fmt.Errorf("table:mechanics: %w", pgx.ErrNoRows)
	}
	return mechanic, err
}

// Delete removes a mechanic; their orders go with them via the FK cascade.
func (r *MechanicRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM mechanics WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:mechanics: %w", pgx.ErrNoRows)
	}
	return nil
}
