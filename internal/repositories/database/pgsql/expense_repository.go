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

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

const selectExpenseFields = `
	expense_id, client_id, item, description, category, amount, date,
	payment_method, receipt_number, recorded_by, created_at, last_updated_at`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.ClientID,
		&m.Item,
		&m.Description,
		&m.Category,
		&m.Amount,
		&m.Date,
		&m.PaymentMethod,
		&m.ReceiptNumber,
		&m.RecordedBy,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveExpense inserts a new expense record.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (` + selectExpenseFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelExpense.ExpenseID,
		modelExpense.ClientID,
		modelExpense.Item,
		modelExpense.Description,
		modelExpense.Category,
		modelExpense.Amount,
		modelExpense.Date,
		modelExpense.PaymentMethod,
		modelExpense.ReceiptNumber,
		modelExpense.RecordedBy,
		modelExpense.CreatedAt,
		modelExpense.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: expense with ID %s already exists", apperrors.ErrDuplicate, modelExpense.ExpenseID)
		}
		return fmt.Errorf("failed to save expense %s: %w", modelExpense.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves one expense scoped to its owning client.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, clientID, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT ` + selectExpenseFields + `
		FROM expenses
		WHERE client_id = $1 AND expense_id = $2;
	`
	modelExpense, err := scanExpense(r.Pool.QueryRow(ctx, query, clientID, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	domainExpense := mapping.ToDomainExpense(modelExpense)
	return &domainExpense, nil
}

// ListExpensesByClient retrieves the client's expenses, optionally limited to
// an inclusive calendar-date range on the expense date.
func (r *PgxExpenseRepository) ListExpensesByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Expense, error) {
	query := `
		SELECT ` + selectExpenseFields + `
		FROM expenses
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
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		return scanExpense(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Expense{}, nil
		}
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}

	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

// UpdateExpense performs a full-field update of the expense row.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)

	query := `
		UPDATE expenses SET
			item = $3,
			description = $4,
			category = $5,
			amount = $6,
			date = $7,
			payment_method = $8,
			receipt_number = $9,
			recorded_by = $10,
			last_updated_at = $11
		WHERE client_id = $1 AND expense_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelExpense.ClientID,
		modelExpense.ExpenseID,
		modelExpense.Item,
		modelExpense.Description,
		modelExpense.Category,
		modelExpense.Amount,
		modelExpense.Date,
		modelExpense.PaymentMethod,
		modelExpense.ReceiptNumber,
		modelExpense.RecordedBy,
		modelExpense.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", modelExpense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes the expense row.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, clientID, expenseID string) error {
	query := `DELETE FROM expenses WHERE client_id = $1 AND expense_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, clientID, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
