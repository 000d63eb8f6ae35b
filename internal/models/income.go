package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is the persisted form of a miscellaneous income record.
type Income struct {
	IncomeID    string          `db:"income_id"`
	ClientID    string          `db:"client_id"`
	Item        string          `db:"item"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"date"`
	RecordedBy  string          `db:"recorded_by"`
	AuditFields
}
