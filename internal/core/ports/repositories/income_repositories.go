package repositories

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
)

// IncomeRepository defines storage operations for income entries.
type IncomeRepository interface {
	SaveIncome(ctx context.Context, income domain.Income) error
	FindIncomeByID(ctx context.Context, clientID, incomeID string) (*domain.Income, error)
	ListIncomeByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Income, error)
	UpdateIncome(ctx context.Context, income domain.Income) error
	DeleteIncome(ctx context.Context, clientID, incomeID string) error
}
