package services

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/dto"
)

// SaleSvcFacade defines operations on sales. Line-item amounts and the sale
// total are recomputed on every read and write; stored totals are not trusted.
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, clientID string, req dto.CreateSaleRequest) (*domain.Sale, error)
	GetSaleByID(ctx context.Context, clientID, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Sale, error)
	UpdateSale(ctx context.Context, clientID, saleID string, req dto.UpdateSaleRequest) (*domain.Sale, error)
	DeleteSale(ctx context.Context, clientID, saleID string) error
}
