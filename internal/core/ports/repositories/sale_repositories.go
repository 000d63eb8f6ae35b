package repositories

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
)

// SaleRepository defines storage operations for sales.
type SaleRepository interface {
	SaveSale(ctx context.Context, sale domain.Sale) error
	FindSaleByID(ctx context.Context, clientID, saleID string) (*domain.Sale, error)
	ListSalesByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Sale, error)
	UpdateSale(ctx context.Context, sale domain.Sale) error
	DeleteSale(ctx context.Context, clientID, saleID string) error
}
