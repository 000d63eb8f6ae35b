package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	portsrepo "github.com/richmill123/rice_mill_backend/internal/core/ports/repositories"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
	"github.com/richmill123/rice_mill_backend/internal/dto"
)

// stockService implements the StockSvcFacade interface.
type stockService struct {
	BaseService
	stockRepo portsrepo.StockRepository
}

// NewStockService creates a new stock service.
func NewStockService(repo portsrepo.StockRepository) portssvc.StockSvcFacade {
	return &stockService{stockRepo: repo}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

// UpsertStock sets the current snapshot quantity for one item type. Item
// types are unique per client, so repeated writes land on the same row.
func (s *stockService) UpsertStock(ctx context.Context, clientID string, req dto.UpsertStockRequest) (*domain.Stock, error) {
	now := time.Now().UTC()
	stock := domain.Stock{
		StockID:           uuid.NewString(),
		ClientID:          clientID,
		ItemType:          req.ItemType,
		AvailableQuantity: req.AvailableQuantity,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	stock, err := ReconcileStock(stock)
	if err != nil {
		s.LogError(ctx, err, "Stock failed validation", slog.String("client_id", clientID))
		return nil, err
	}

	saved, err := s.stockRepo.UpsertStock(ctx, stock)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert stock", slog.String("client_id", clientID), slog.String("item_type", req.ItemType))
		return nil, fmt.Errorf("failed to upsert stock for %s: %w", req.ItemType, err)
	}
	return saved, nil
}

// GetStockByID retrieves one stock row scoped to the client.
func (s *stockService) GetStockByID(ctx context.Context, clientID, stockID string) (*domain.Stock, error) {
	return s.stockRepo.FindStockByID(ctx, clientID, stockID)
}

// ListStock retrieves the client's current stock snapshot.
func (s *stockService) ListStock(ctx context.Context, clientID string) ([]domain.Stock, error) {
	stocks, err := s.stockRepo.ListStockByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}
	return stocks, nil
}

// DeleteStock removes a stock row.
func (s *stockService) DeleteStock(ctx context.Context, clientID, stockID string) error {
	if err := s.stockRepo.DeleteStock(ctx, clientID, stockID); err != nil {
		s.LogError(ctx, err, "Failed to delete stock", slog.String("stock_id", stockID))
		return err
	}
	return nil
}
