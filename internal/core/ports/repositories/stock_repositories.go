package repositories

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
)

// StockRepository defines storage operations for the stock snapshot.
// ItemType is unique per client, so writes go through an upsert.
type StockRepository interface {
	UpsertStock(ctx context.Context, stock domain.Stock) (*domain.Stock, error)
	FindStockByID(ctx context.Context, clientID, stockID string) (*domain.Stock, error)
	ListStockByClient(ctx context.Context, clientID string) ([]domain.Stock, error)
	DeleteStock(ctx context.Context, clientID, stockID string) error
}
