package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the persisted form of an expense record.
type Expense struct {
	ExpenseID     string          `db:"expense_id"`
	ClientID      string          `db:"client_id"`
	Item          string          `db:"item"`
	Description   string          `db:"description"`
	Category      string          `db:"category"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	PaymentMethod string          `db:"payment_method"`
	ReceiptNumber string          `db:"receipt_number"`
	RecordedBy    string          `db:"recorded_by"`
	AuditFields
}
