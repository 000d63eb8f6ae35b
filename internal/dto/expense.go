package dto

import (
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Item          string               `json:"item" binding:"required"`
	Description   string               `json:"description"`
	Category      string               `json:"category"`
	Amount        decimal.Decimal      `json:"amount" binding:"required"`
	Date          string               `json:"date" binding:"required,datetime=2006-01-02"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=Cash 'Bank Transfer' UPI Cheque Other"`
	ReceiptNumber string               `json:"receiptNumber"`
	RecordedBy    string               `json:"recordedBy"`
}

// UpdateExpenseRequest mirrors CreateExpenseRequest for a full-field update.
type UpdateExpenseRequest = CreateExpenseRequest

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string               `json:"expenseID"`
	Item          string               `json:"item"`
	Description   string               `json:"description"`
	Category      string               `json:"category"`
	Amount        decimal.Decimal      `json:"amount"`
	Date          string               `json:"date"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	ReceiptNumber string               `json:"receiptNumber"`
	RecordedBy    string               `json:"recordedBy"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Item:          e.Item,
		Description:   e.Description,
		Category:      e.Category,
		Amount:        e.Amount,
		Date:          e.Date.Format("2006-01-02"),
		PaymentMethod: e.PaymentMethod,
		ReceiptNumber: e.ReceiptNumber,
		RecordedBy:    e.RecordedBy,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to response DTOs.
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e)
	}
	return res
}
