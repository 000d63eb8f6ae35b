package repositories

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
)

// ExpenseRepository defines storage operations for expenses.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, clientID, expenseID string) (*domain.Expense, error)
	ListExpensesByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, clientID, expenseID string) error
}
