package services

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/dto"
)

// ExpenseSvcFacade defines operations on expense entries.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, clientID string, req dto.CreateExpenseRequest) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, clientID, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, clientID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, clientID, expenseID string) error
}
