package domain

import (
	"github.com/shopspring/decimal"
)

// SaleItemType names a mill by-product sold to customers.
type SaleItemType string

const (
	ItemBran       SaleItemType = "bran"
	ItemHusk       SaleItemType = "husk"
	ItemBlackRice  SaleItemType = "black rice"
	ItemBrokenRice SaleItemType = "broken rice"
	ItemKarika     SaleItemType = "Karika"
	ItemOther      SaleItemType = "others"
)

// PaymentStatus tracks how much of a sale has been settled.
type PaymentStatus string

const (
	PaymentPaid          PaymentStatus = "Paid"
	PaymentPending       PaymentStatus = "Pending"
	PaymentPartiallyPaid PaymentStatus = "Partially Paid"
)

// PaymentMethod names how money changed hands.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodUPI          PaymentMethod = "UPI"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodCheque       PaymentMethod = "Cheque"
	MethodOther        PaymentMethod = "Other"
)

// SaleItem is one line of a sale. Amount is always recomputed from
// Quantity x Rate; a stored amount that disagrees is never trusted.
type SaleItem struct {
	ItemType SaleItemType    `json:"itemType"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

// Sale records a by-product sale with an ordered list of line items.
// TotalAmount is the recomputed sum of item amounts.
type Sale struct {
	SaleID        string          `json:"saleID"`
	ClientID      string          `json:"clientID"`
	Name          string          `json:"name"`
	PhoneNumber   string          `json:"phoneNumber"`
	Address       string          `json:"address"`
	Items         []SaleItem      `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	AuditFields
}
