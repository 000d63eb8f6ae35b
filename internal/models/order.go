package models

import (
	"github.com/shopspring/decimal"
)

// Order is the persisted form of a paddy-processing order. Status is stored
// as its text value.
type Order struct {
	OrderID       string          `db:"order_id"`
	ClientID      string          `db:"client_id"`
	Name          string          `db:"name"`
	VillageName   string          `db:"village_name"`
	Address       string          `db:"address"`
	PhoneNumber   string          `db:"phone_number"`
	TypeOfPaddy   string          `db:"type_of_paddy"`
	NumberOfBags  int             `db:"number_of_bags"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	AdvanceAmount decimal.Decimal `db:"advance_amount"`
	Status        string          `db:"status"`
	AuditFields
}
