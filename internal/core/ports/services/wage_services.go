package services

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/dto"
)

// WageSvcFacade defines operations on wage entries. Returned wages always
// carry the derived pending amount.
type WageSvcFacade interface {
	CreateWage(ctx context.Context, clientID string, req dto.CreateWageRequest) (*domain.Wage, error)
	GetWageByID(ctx context.Context, clientID, wageID string) (*domain.Wage, error)
	ListWages(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Wage, error)
	UpdateWage(ctx context.Context, clientID, wageID string, req dto.UpdateWageRequest) (*domain.Wage, error)
	DeleteWage(ctx context.Context, clientID, wageID string) error
}
