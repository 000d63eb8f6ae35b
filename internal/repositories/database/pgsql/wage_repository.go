package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	portsrepo "github.com/richmill123/rice_mill_backend/internal/core/ports/repositories"
	"github.com/richmill123/rice_mill_backend/internal/models"
	"github.com/richmill123/rice_mill_backend/internal/utils/mapping"
)

type PgxWageRepository struct {
	BaseRepository
}

// newPgxWageRepository creates a new repository for wage data.
func newPgxWageRepository(pool *pgxpool.Pool) portsrepo.WageRepository {
	return &PgxWageRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.WageRepository = (*PgxWageRepository)(nil)

const selectWageFields = `
	wage_id, client_id, employee_id, employee_name, total_wage, advance_wage,
	advance_debt, bags, type_of_work, machine_type, date, notes,
	created_at, last_updated_at`

func scanWage(row pgx.Row) (models.Wage, error) {
	var m models.Wage
	err := row.Scan(
		&m.WageID,
		&m.ClientID,
		&m.EmployeeID,
		&m.EmployeeName,
		&m.TotalWage,
		&m.AdvanceWage,
		&m.AdvanceDebt,
		&m.Bags,
		&m.TypeOfWork,
		&m.MachineType,
		&m.Date,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveWage inserts a new wage entry.
func (r *PgxWageRepository) SaveWage(ctx context.Context, wage domain.Wage) error {
	modelWage := mapping.ToModelWage(wage)

	query := `
		INSERT INTO wages (` + selectWageFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelWage.WageID,
		modelWage.ClientID,
		modelWage.EmployeeID,
		modelWage.EmployeeName,
		modelWage.TotalWage,
		modelWage.AdvanceWage,
		modelWage.AdvanceDebt,
		modelWage.Bags,
		modelWage.TypeOfWork,
		modelWage.MachineType,
		modelWage.Date,
		modelWage.Notes,
		modelWage.CreatedAt,
		modelWage.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: wage with ID %s already exists", apperrors.ErrDuplicate, modelWage.WageID)
		}
		return fmt.Errorf("failed to save wage %s: %w", modelWage.WageID, err)
	}
	return nil
}

// FindWageByID retrieves one wage entry scoped to its owning client.
func (r *PgxWageRepository) FindWageByID(ctx context.Context, clientID, wageID string) (*domain.Wage, error) {
	query := `
		SELECT ` + selectWageFields + `
		FROM wages
		WHERE client_id = $1 AND wage_id = $2;
	`
	modelWage, err := scanWage(r.Pool.QueryRow(ctx, query, clientID, wageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wage %s: %w", wageID, err)
	}

	domainWage := mapping.ToDomainWage(modelWage)
	return &domainWage, nil
}

// ListWagesByClient retrieves the client's wage entries, optionally limited
// to an inclusive calendar-date range on the work date.
func (r *PgxWageRepository) ListWagesByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Wage, error) {
	query := `
		SELECT ` + selectWageFields + `
		FROM wages
		WHERE client_id = $1
	`
	args := []any{clientID}
	if dateRange != nil {
		query += ` AND date >= $2 AND date < $3`
		args = append(args, domain.DayOf(dateRange.Start), domain.DayOf(dateRange.End).AddDate(0, 0, 1))
	}
	query += ` ORDER BY date;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wages: %w", err)
	}
	defer rows.Close()

	modelWages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Wage, error) {
		return scanWage(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Wage{}, nil
		}
		return nil, fmt.Errorf("failed to scan wages: %w", err)
	}

	return mapping.ToDomainWageSlice(modelWages), nil
}

// UpdateWage performs a full-field update of the wage row.
func (r *PgxWageRepository) UpdateWage(ctx context.Context, wage domain.Wage) error {
	modelWage := mapping.ToModelWage(wage)

	query := `
		UPDATE wages SET
			employee_id = $3,
			employee_name = $4,
			total_wage = $5,
			advance_wage = $6,
			advance_debt = $7,
			bags = $8,
			type_of_work = $9,
			machine_type = $10,
			date = $11,
			notes = $12,
			last_updated_at = $13
		WHERE client_id = $1 AND wage_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelWage.ClientID,
		modelWage.WageID,
		modelWage.EmployeeID,
		modelWage.EmployeeName,
		modelWage.TotalWage,
		modelWage.AdvanceWage,
		modelWage.AdvanceDebt,
		modelWage.Bags,
		modelWage.TypeOfWork,
		modelWage.MachineType,
		modelWage.Date,
		modelWage.Notes,
		modelWage.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update wage %s: %w", modelWage.WageID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteWage removes the wage row.
func (r *PgxWageRepository) DeleteWage(ctx context.Context, clientID, wageID string) error {
	query := `DELETE FROM wages WHERE client_id = $1 AND wage_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, clientID, wageID)
	if err != nil {
		return fmt.Errorf("failed to delete wage %s: %w", wageID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
