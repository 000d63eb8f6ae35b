package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income records money coming in outside of orders and sales. It is kept as
// an additive revenue source independent of sales revenue.
type Income struct {
	IncomeID    string          `json:"incomeID"`
	ClientID    string          `json:"clientID"`
	Item        string          `json:"item"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	RecordedBy  string          `json:"recordedBy"`
	AuditFields
}
