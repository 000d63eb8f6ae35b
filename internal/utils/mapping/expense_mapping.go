package mapping

import (
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		ClientID:      d.ClientID,
		Item:          d.Item,
		Description:   d.Description,
		Category:      d.Category,
		Amount:        d.Amount,
		Date:          d.Date,
		PaymentMethod: string(d.PaymentMethod),
		ReceiptNumber: d.ReceiptNumber,
		RecordedBy:    d.RecordedBy,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		ClientID:      m.ClientID,
		Item:          m.Item,
		Description:   m.Description,
		Category:      m.Category,
		Amount:        m.Amount,
		Date:          m.Date,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		ReceiptNumber: m.ReceiptNumber,
		RecordedBy:    m.RecordedBy,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
