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

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sale data.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepository {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SaleRepository = (*PgxSaleRepository)(nil)

const selectSaleFields = `
	sale_id, client_id, name, phone_number, address, items, total_amount,
	payment_status, payment_method, created_at, last_updated_at`

// scanSale scans one sale row. The items column is JSONB and decodes
// straight into the model's item slice.
func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.ClientID,
		&m.Name,
		&m.PhoneNumber,
		&m.Address,
		&m.Items,
		&m.TotalAmount,
		&m.PaymentStatus,
		&m.PaymentMethod,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveSale inserts a new sale with its line items.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	modelSale := mapping.ToModelSale(sale)

	query := `
		INSERT INTO sales (` + selectSaleFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelSale.SaleID,
		modelSale.ClientID,
		modelSale.Name,
		modelSale.PhoneNumber,
		modelSale.Address,
		modelSale.Items,
		modelSale.TotalAmount,
		modelSale.PaymentStatus,
		modelSale.PaymentMethod,
		modelSale.CreatedAt,
		modelSale.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: sale with ID %s already exists", apperrors.ErrDuplicate, modelSale.SaleID)
		}
		return fmt.Errorf("failed to save sale %s: %w", modelSale.SaleID, err)
	}
	return nil
}

// FindSaleByID retrieves one sale scoped to its owning client.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, clientID, saleID string) (*domain.Sale, error) {
	query := `
		SELECT ` + selectSaleFields + `
		FROM sales
		WHERE client_id = $1 AND sale_id = $2;
	`
	modelSale, err := scanSale(r.Pool.QueryRow(ctx, query, clientID, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}

	domainSale := mapping.ToDomainSale(modelSale)
	return &domainSale, nil
}

// ListSalesByClient retrieves the client's sales, optionally limited to an
// inclusive calendar-date range on created_at.
func (r *PgxSaleRepository) ListSalesByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Sale, error) {
	query := `
		SELECT ` + selectSaleFields + `
		FROM sales
		WHERE client_id = $1
	`
	args := []any{clientID}
	if dateRange != nil {
		query += ` AND created_at >= $2 AND created_at < $3`
		args = append(args, domain.DayOf(dateRange.Start), domain.DayOf(dateRange.End).AddDate(0, 0, 1))
	}
	query += ` ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	modelSales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Sale, error) {
		return scanSale(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Sale{}, nil
		}
		return nil, fmt.Errorf("failed to scan sales: %w", err)
	}

	return mapping.ToDomainSaleSlice(modelSales), nil
}

// UpdateSale performs a full-field update of the sale row, items included.
func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	modelSale := mapping.ToModelSale(sale)

	query := `
		UPDATE sales SET
			name = $3,
			phone_number = $4,
			address = $5,
			items = $6,
			total_amount = $7,
			payment_status = $8,
			payment_method = $9,
			last_updated_at = $10
		WHERE client_id = $1 AND sale_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelSale.ClientID,
		modelSale.SaleID,
		modelSale.Name,
		modelSale.PhoneNumber,
		modelSale.Address,
		modelSale.Items,
		modelSale.TotalAmount,
		modelSale.PaymentStatus,
		modelSale.PaymentMethod,
		modelSale.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update sale %s: %w", modelSale.SaleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSale removes the sale row and its embedded items.
func (r *PgxSaleRepository) DeleteSale(ctx context.Context, clientID, saleID string) error {
	query := `DELETE FROM sales WHERE client_id = $1 AND sale_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, clientID, saleID)
	if err != nil {
		return fmt.Errorf("failed to delete sale %s: %w", saleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
