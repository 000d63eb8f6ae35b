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

// expenseService implements the ExpenseSvcFacade interface.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo portsrepo.ExpenseRepository) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: repo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func expenseFromRequest(req dto.CreateExpenseRequest) (domain.Expense, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("invalid expense date %q: %w", req.Date, err)
	}
	return domain.Expense{
		Item:          req.Item,
		Description:   req.Description,
		Category:      req.Category,
		Amount:        req.Amount,
		Date:          date,
		PaymentMethod: req.PaymentMethod,
		ReceiptNumber: req.ReceiptNumber,
		RecordedBy:    req.RecordedBy,
	}, nil
}

// CreateExpense validates and stores a new expense.
func (s *expenseService) CreateExpense(ctx context.Context, clientID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	expense, err := expenseFromRequest(req)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	expense.ExpenseID = uuid.NewString()
	expense.ClientID = clientID
	expense.CreatedAt = now
	expense.LastUpdatedAt = now

	expense, err = ReconcileExpense(expense)
	if err != nil {
		s.LogError(ctx, err, "Expense failed validation", slog.String("client_id", clientID))
		return nil, err
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	return &expense, nil
}

// GetExpenseByID retrieves one expense scoped to the client.
func (s *expenseService) GetExpenseByID(ctx context.Context, clientID, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, clientID, expenseID)
}

// ListExpenses retrieves the client's expenses, optionally date-ranged.
func (s *expenseService) ListExpenses(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpensesByClient(ctx, clientID, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// UpdateExpense performs a full-field update of an expense.
func (s *expenseService) UpdateExpense(ctx context.Context, clientID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	existing, err := s.expenseRepo.FindExpenseByID(ctx, clientID, expenseID)
	if err != nil {
		return nil, err
	}

	updated, err := expenseFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ExpenseID = existing.ExpenseID
	updated.ClientID = existing.ClientID
	updated.CreatedAt = existing.CreatedAt
	updated.LastUpdatedAt = time.Now().UTC()

	updated, err = ReconcileExpense(updated)
	if err != nil {
		s.LogError(ctx, err, "Expense update failed validation", slog.String("expense_id", expenseID))
		return nil, err
	}

	if err := s.expenseRepo.UpdateExpense(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	return &updated, nil
}

// DeleteExpense removes an expense.
func (s *expenseService) DeleteExpense(ctx context.Context, clientID, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, clientID, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}
	return nil
}
