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

// wageService implements the WageSvcFacade interface.
type wageService struct {
	BaseService
	wageRepo portsrepo.WageRepository
}

// NewWageService creates a new wage service.
func NewWageService(repo portsrepo.WageRepository) portssvc.WageSvcFacade {
	return &wageService{wageRepo: repo}
}

var _ portssvc.WageSvcFacade = (*wageService)(nil)

func (s *wageService) wageFromRequest(req dto.CreateWageRequest) (domain.Wage, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.Wage{}, fmt.Errorf("invalid wage date %q: %w", req.Date, err)
	}
	return domain.Wage{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		TotalWage:    req.TotalWage,
		AdvanceWage:  req.AdvanceWage,
		AdvanceDebt:  req.AdvanceDebt,
		Bags:         req.Bags,
		TypeOfWork:   req.TypeOfWork,
		MachineType:  req.MachineType,
		Date:         date,
		Notes:        req.Notes,
	}, nil
}

// CreateWage validates, reconciles and stores a new wage entry.
func (s *wageService) CreateWage(ctx context.Context, clientID string, req dto.CreateWageRequest) (*domain.Wage, error) {
	wage, err := s.wageFromRequest(req)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	wage.WageID = uuid.NewString()
	wage.ClientID = clientID
	wage.CreatedAt = now
	wage.LastUpdatedAt = now

	wage, err = ReconcileWage(wage)
	if err != nil {
		s.LogError(ctx, err, "Wage failed validation", slog.String("client_id", clientID))
		return nil, err
	}

	if err := s.wageRepo.SaveWage(ctx, wage); err != nil {
		s.LogError(ctx, err, "Failed to save wage", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to save wage: %w", err)
	}
	return &wage, nil
}

// GetWageByID retrieves one wage entry with its derived pending amount.
func (s *wageService) GetWageByID(ctx context.Context, clientID, wageID string) (*domain.Wage, error) {
	wage, err := s.wageRepo.FindWageByID(ctx, clientID, wageID)
	if err != nil {
		return nil, err
	}
	reconciled, err := ReconcileWage(*wage)
	if err != nil {
		return nil, err
	}
	return &reconciled, nil
}

// ListWages retrieves the client's wage entries, reconciled.
func (s *wageService) ListWages(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Wage, error) {
	wages, err := s.wageRepo.ListWagesByClient(ctx, clientID, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wages", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list wages: %w", err)
	}
	out := make([]domain.Wage, len(wages))
	for i, w := range wages {
		reconciled, err := ReconcileWage(w)
		if err != nil {
			return nil, err
		}
		out[i] = reconciled
	}
	return out, nil
}

// UpdateWage performs a full-field update of a wage entry.
func (s *wageService) UpdateWage(ctx context.Context, clientID, wageID string, req dto.UpdateWageRequest) (*domain.Wage, error) {
	existing, err := s.wageRepo.FindWageByID(ctx, clientID, wageID)
	if err != nil {
		return nil, err
	}

	updated, err := s.wageFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.WageID = existing.WageID
	updated.ClientID = existing.ClientID
	updated.CreatedAt = existing.CreatedAt
	updated.LastUpdatedAt = time.Now().UTC()

	updated, err = ReconcileWage(updated)
	if err != nil {
		s.LogError(ctx, err, "Wage update failed validation", slog.String("wage_id", wageID))
		return nil, err
	}

	if err := s.wageRepo.UpdateWage(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update wage", slog.String("wage_id", wageID))
		return nil, fmt.Errorf("failed to update wage %s: %w", wageID, err)
	}
	return &updated, nil
}

// DeleteWage removes a wage entry.
func (s *wageService) DeleteWage(ctx context.Context, clientID, wageID string) error {
	if err := s.wageRepo.DeleteWage(ctx, clientID, wageID); err != nil {
		s.LogError(ctx, err, "Failed to delete wage", slog.String("wage_id", wageID))
		return err
	}
	return nil
}
