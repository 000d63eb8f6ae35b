package models

import (
	"github.com/shopspring/decimal"
)

// Stock is the persisted current-stock row. (client_id, item_type) is unique
// so upserts land on the same row.
type Stock struct {
	StockID           string          `db:"stock_id"`
	ClientID          string          `db:"client_id"`
	ItemType          string          `db:"item_type"`
	AvailableQuantity decimal.Decimal `db:"available_quantity"`
	AuditFields
}
