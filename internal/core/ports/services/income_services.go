package services

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/dto"
)

// IncomeSvcFacade defines operations on income entries.
type IncomeSvcFacade interface {
	CreateIncome(ctx context.Context, clientID string, req dto.CreateIncomeRequest) (*domain.Income, error)
	GetIncomeByID(ctx context.Context, clientID, incomeID string) (*domain.Income, error)
	ListIncome(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Income, error)
	UpdateIncome(ctx context.Context, clientID, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error)
	DeleteIncome(ctx context.Context, clientID, incomeID string) error
}
