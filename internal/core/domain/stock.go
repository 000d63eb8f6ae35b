package domain

import (
	"github.com/shopspring/decimal"
)

// Stock is the current on-hand quantity of one by-product. ItemType is unique
// per owning client; the snapshot is a direct passthrough, never aggregated
// over time.
type Stock struct {
	StockID           string          `json:"stockID"`
	ClientID          string          `json:"clientID"`
	ItemType          string          `json:"itemType"`
	AvailableQuantity decimal.Decimal `json:"availableQuantity"`
	AuditFields
}
