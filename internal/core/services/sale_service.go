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

// saleService implements the SaleSvcFacade interface.
type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepository
}

// NewSaleService creates a new sale service.
func NewSaleService(repo portsrepo.SaleRepository) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: repo}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func saleFromRequest(req dto.CreateSaleRequest) domain.Sale {
	items := make([]domain.SaleItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.SaleItem{
			ItemType: it.ItemType,
			Quantity: it.Quantity,
			Rate:     it.Rate,
			// Amount from the request is deliberately dropped; reconciliation
			// recomputes it from quantity x rate.
		}
	}
	return domain.Sale{
		Name:          req.Name,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		Items:         items,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
	}
}

// CreateSale reconciles and stores a new sale. Item amounts and the total are
// recomputed before the record ever reaches storage.
func (s *saleService) CreateSale(ctx context.Context, clientID string, req dto.CreateSaleRequest) (*domain.Sale, error) {
	sale := saleFromRequest(req)
	now := time.Now().UTC()
	sale.SaleID = uuid.NewString()
	sale.ClientID = clientID
	sale.CreatedAt = now
	sale.LastUpdatedAt = now

	sale, err := ReconcileSale(sale)
	if err != nil {
		s.LogError(ctx, err, "Sale failed validation", slog.String("client_id", clientID))
		return nil, err
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}
	return &sale, nil
}

// GetSaleByID retrieves one sale with recomputed amounts.
func (s *saleService) GetSaleByID(ctx context.Context, clientID, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, clientID, saleID)
	if err != nil {
		return nil, err
	}
	reconciled, err := ReconcileSale(*sale)
	if err != nil {
		return nil, err
	}
	return &reconciled, nil
}

// ListSales retrieves the client's sales with recomputed amounts.
func (s *saleService) ListSales(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListSalesByClient(ctx, clientID, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	out := make([]domain.Sale, len(sales))
	for i, sale := range sales {
		reconciled, err := ReconcileSale(sale)
		if err != nil {
			return nil, err
		}
		out[i] = reconciled
	}
	return out, nil
}

// UpdateSale performs a full-field update of a sale.
func (s *saleService) UpdateSale(ctx context.Context, clientID, saleID string, req dto.UpdateSaleRequest) (*domain.Sale, error) {
	existing, err := s.saleRepo.FindSaleByID(ctx, clientID, saleID)
	if err != nil {
		return nil, err
	}

	updated := saleFromRequest(req)
	updated.SaleID = existing.SaleID
	updated.ClientID = existing.ClientID
	updated.CreatedAt = existing.CreatedAt
	updated.LastUpdatedAt = time.Now().UTC()

	updated, err = ReconcileSale(updated)
	if err != nil {
		s.LogError(ctx, err, "Sale update failed validation", slog.String("sale_id", saleID))
		return nil, err
	}

	if err := s.saleRepo.UpdateSale(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update sale", slog.String("sale_id", saleID))
		return nil, fmt.Errorf("failed to update sale %s: %w", saleID, err)
	}
	return &updated, nil
}

// DeleteSale removes a sale.
func (s *saleService) DeleteSale(ctx context.Context, clientID, saleID string) error {
	if err := s.saleRepo.DeleteSale(ctx, clientID, saleID); err != nil {
		s.LogError(ctx, err, "Failed to delete sale", slog.String("sale_id", saleID))
		return err
	}
	return nil
}
