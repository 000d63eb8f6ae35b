package models

import (
	"github.com/shopspring/decimal"
)

// SaleItem is one sale line as stored inside the sale's JSONB items column.
type SaleItem struct {
	ItemType string          `json:"itemType"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

// Sale is the persisted form of a by-product sale. Items are kept as a JSONB
// document so the line list stays ordered and atomic with its sale.
type Sale struct {
	SaleID        string          `db:"sale_id"`
	ClientID      string          `db:"client_id"`
	Name          string          `db:"name"`
	PhoneNumber   string          `db:"phone_number"`
	Address       string          `db:"address"`
	Items         []SaleItem      `db:"items"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaymentStatus string          `db:"payment_status"`
	PaymentMethod string          `db:"payment_method"`
	AuditFields
}
