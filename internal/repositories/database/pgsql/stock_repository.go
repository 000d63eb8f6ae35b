package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	portsrepo "github.com/richmill123/rice_mill_backend/internal/core/ports/repositories"
	"github.com/richmill123/rice_mill_backend/internal/models"
	"github.com/richmill123/rice_mill_backend/internal/utils/mapping"
)

type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for stock data.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepository {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StockRepository = (*PgxStockRepository)(nil)

const selectStockFields = `
	stock_id, client_id, item_type, available_quantity, created_at, last_updated_at`

func scanStock(row pgx.Row) (models.Stock, error) {
	var m models.Stock
	err := row.Scan(
		&m.StockID,
		&m.ClientID,
		&m.ItemType,
		&m.AvailableQuantity,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// UpsertStock writes the current quantity for one item type. (client_id,
// item_type) is unique, so a repeated write updates the existing row and
// keeps its original stock_id and created_at.
func (r *PgxStockRepository) UpsertStock(ctx context.Context, stock domain.Stock) (*domain.Stock, error) {
	modelStock := mapping.ToModelStock(stock)

	query := `
		INSERT INTO stock (` + selectStockFields + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (client_id, item_type) DO UPDATE SET
			available_quantity = EXCLUDED.available_quantity,
			last_updated_at = EXCLUDED.last_updated_at
		RETURNING ` + selectStockFields
	saved, err := scanStock(r.Pool.QueryRow(ctx, query,
		modelStock.StockID,
		modelStock.ClientID,
		modelStock.ItemType,
		modelStock.AvailableQuantity,
		modelStock.CreatedAt,
		modelStock.LastUpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert stock for %s: %w", modelStock.ItemType, err)
	}

	domainStock := mapping.ToDomainStock(saved)
	return &domainStock, nil
}

// FindStockByID retrieves one stock row scoped to its owning client.
func (r *PgxStockRepository) FindStockByID(ctx context.Context, clientID, stockID string) (*domain.Stock, error) {
	query := `
		SELECT ` + selectStockFields + `
		FROM stock
		WHERE client_id = $1 AND stock_id = $2;
	`
	modelStock, err := scanStock(r.Pool.QueryRow(ctx, query, clientID, stockID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stock %s: %w", stockID, err)
	}

	domainStock := mapping.ToDomainStock(modelStock)
	return &domainStock, nil
}

// ListStockByClient retrieves the client's full current-stock snapshot.
func (r *PgxStockRepository) ListStockByClient(ctx context.Context, clientID string) ([]domain.Stock, error) {
	query := `
		SELECT ` + selectStockFields + `
		FROM stock
		WHERE client_id = $1
		ORDER BY item_type;
	`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock: %w", err)
	}
	defer rows.Close()

	modelStocks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Stock, error) {
		return scanStock(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Stock{}, nil
		}
		return nil, fmt.Errorf("failed to scan stock: %w", err)
	}

	return mapping.ToDomainStockSlice(modelStocks), nil
}

// DeleteStock removes the stock row.
func (r *PgxStockRepository) DeleteStock(ctx context.Context, clientID, stockID string) error {
	query := `DELETE FROM stock WHERE client_id = $1 AND stock_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, clientID, stockID)
	if err != nil {
		return fmt.Errorf("failed to delete stock %s: %w", stockID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
