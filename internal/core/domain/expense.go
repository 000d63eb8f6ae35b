package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense records money going out for anything other than wages or salary.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	ClientID      string          `json:"clientID"`
	Item          string          `json:"item"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	ReceiptNumber string          `json:"receiptNumber"`
	RecordedBy    string          `json:"recordedBy"`
	AuditFields
}
