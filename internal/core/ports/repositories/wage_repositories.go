package repositories

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
)

// WageRepository defines storage operations for wage entries.
type WageRepository interface {
	SaveWage(ctx context.Context, wage domain.Wage) error
	FindWageByID(ctx context.Context, clientID, wageID string) (*domain.Wage, error)
	ListWagesByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Wage, error)
	UpdateWage(ctx context.Context, wage domain.Wage) error
	DeleteWage(ctx context.Context, clientID, wageID string) error
}
