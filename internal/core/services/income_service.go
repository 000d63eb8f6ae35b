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

// incomeService implements the IncomeSvcFacade interface.
type incomeService struct {
	BaseService
	incomeRepo portsrepo.IncomeRepository
}

// NewIncomeService creates a new income service.
func NewIncomeService(repo portsrepo.IncomeRepository) portssvc.IncomeSvcFacade {
	return &incomeService{incomeRepo: repo}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

func incomeFromRequest(req dto.CreateIncomeRequest) (domain.Income, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.Income{}, fmt.Errorf("invalid income date %q: %w", req.Date, err)
	}
	return domain.Income{
		Item:        req.Item,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		RecordedBy:  req.RecordedBy,
	}, nil
}

// CreateIncome validates and stores a new income entry.
func (s *incomeService) CreateIncome(ctx context.Context, clientID string, req dto.CreateIncomeRequest) (*domain.Income, error) {
	income, err := incomeFromRequest(req)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	income.IncomeID = uuid.NewString()
	income.ClientID = clientID
	income.CreatedAt = now
	income.LastUpdatedAt = now

	income, err = ReconcileIncome(income)
	if err != nil {
		s.LogError(ctx, err, "Income failed validation", slog.String("client_id", clientID))
		return nil, err
	}

	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		s.LogError(ctx, err, "Failed to save income", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to save income: %w", err)
	}
	return &income, nil
}

// GetIncomeByID retrieves one income entry scoped to the client.
func (s *incomeService) GetIncomeByID(ctx context.Context, clientID, incomeID string) (*domain.Income, error) {
	return s.incomeRepo.FindIncomeByID(ctx, clientID, incomeID)
}

// ListIncome retrieves the client's income entries, optionally date-ranged.
func (s *incomeService) ListIncome(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Income, error) {
	income, err := s.incomeRepo.ListIncomeByClient(ctx, clientID, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to list income", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list income: %w", err)
	}
	return income, nil
}

// UpdateIncome performs a full-field update of an income entry.
func (s *incomeService) UpdateIncome(ctx context.Context, clientID, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error) {
	existing, err := s.incomeRepo.FindIncomeByID(ctx, clientID, incomeID)
	if err != nil {
		return nil, err
	}

	updated, err := incomeFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.IncomeID = existing.IncomeID
	updated.ClientID = existing.ClientID
	updated.CreatedAt = existing.CreatedAt
	updated.LastUpdatedAt = time.Now().UTC()

	updated, err = ReconcileIncome(updated)
	if err != nil {
		s.LogError(ctx, err, "Income update failed validation", slog.String("income_id", incomeID))
		return nil, err
	}

	if err := s.incomeRepo.UpdateIncome(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update income", slog.String("income_id", incomeID))
		return nil, fmt.Errorf("failed to update income %s: %w", incomeID, err)
	}
	return &updated, nil
}

// DeleteIncome removes an income entry.
func (s *incomeService) DeleteIncome(ctx context.Context, clientID, incomeID string) error {
	if err := s.incomeRepo.DeleteIncome(ctx, clientID, incomeID); err != nil {
		s.LogError(ctx, err, "Failed to delete income", slog.String("income_id", incomeID))
		return err
	}
	return nil
}
