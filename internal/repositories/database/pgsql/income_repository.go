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

type PgxIncomeRepository struct {
	BaseRepository
}

// newPgxIncomeRepository creates a new repository for income data.
func newPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepository {
	return &PgxIncomeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.IncomeRepository = (*PgxIncomeRepository)(nil)

const selectIncomeFields = `
	income_id, client_id, item, description, amount, date, recorded_by,
	created_at, last_updated_at`

func scanIncome(row pgx.Row) (models.Income, error) {
	var m models.Income
	err := row.Scan(
		&m.IncomeID,
		&m.ClientID,
		&m.Item,
		&m.Description,
		&m.Amount,
		&m.Date,
		&m.RecordedBy,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveIncome inserts a new income record.
func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	modelIncome := mapping.ToModelIncome(income)

	query := `
		INSERT INTO income (` + selectIncomeFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelIncome.IncomeID,
		modelIncome.ClientID,
		modelIncome.Item,
		modelIncome.Description,
		modelIncome.Amount,
		modelIncome.Date,
		modelIncome.RecordedBy,
		modelIncome.CreatedAt,
		modelIncome.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: income with ID %s already exists", apperrors.ErrDuplicate, modelIncome.IncomeID)
		}
		return fmt.Errorf("failed to save income %s: %w", modelIncome.IncomeID, err)
	}
	return nil
}

// FindIncomeByID retrieves one income record scoped to its owning client.
func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, clientID, incomeID string) (*domain.Income, error) {
	query := `
		SELECT ` + selectIncomeFields + `
		FROM income
		WHERE client_id = $1 AND income_id = $2;
	`
	modelIncome, err := scanIncome(r.Pool.QueryRow(ctx, query, clientID, incomeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find income %s: %w", incomeID, err)
	}

	domainIncome := mapping.ToDomainIncome(modelIncome)
	return &domainIncome, nil
}

// ListIncomeByClient retrieves the client's income records, optionally
// limited to an inclusive calendar-date range on the income date.
func (r *PgxIncomeRepository) ListIncomeByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Income, error) {
	query := `
		SELECT ` + selectIncomeFields + `
		FROM income
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
		return nil, fmt.Errorf("failed to query income: %w", err)
	}
	defer rows.Close()

	modelIncomes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Income, error) {
		return scanIncome(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Income{}, nil
		}
		return nil, fmt.Errorf("failed to scan income: %w", err)
	}

	return mapping.ToDomainIncomeSlice(modelIncomes), nil
}

// UpdateIncome performs a full-field update of the income row.
func (r *PgxIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) error {
	modelIncome := mapping.ToModelIncome(income)

	query := `
		UPDATE income SET
			item = $3,
			description = $4,
			amount = $5,
			date = $6,
			recorded_by = $7,
			last_updated_at = $8
		WHERE client_id = $1 AND income_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelIncome.ClientID,
		modelIncome.IncomeID,
		modelIncome.Item,
		modelIncome.Description,
		modelIncome.Amount,
		modelIncome.Date,
		modelIncome.RecordedBy,
		modelIncome.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update income %s: %w", modelIncome.IncomeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteIncome removes the income row.
func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, clientID, incomeID string) error {
	query := `DELETE FROM income WHERE client_id = $1 AND income_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, clientID, incomeID)
	if err != nil {
		return fmt.Errorf("failed to delete income %s: %w", incomeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
