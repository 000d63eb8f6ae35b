package services

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/dto"
)

// StockSvcFacade defines operations on the stock snapshot.
type StockSvcFacade interface {
	UpsertStock(ctx context.Context, clientID string, req dto.UpsertStockRequest) (*domain.Stock, error)
	GetStockByID(ctx context.Context, clientID, stockID string) (*domain.Stock, error)
	ListStock(ctx context.Context, clientID string) ([]domain.Stock, error)
	DeleteStock(ctx context.Context, clientID, stockID string) error
}
