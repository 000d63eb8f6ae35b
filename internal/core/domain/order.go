package domain

import (
	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order through the paddy-to-rice production pipeline.
type OrderStatus string

const (
	OrderCreated            OrderStatus = "CREATED"
	OrderInitialStocking    OrderStatus = "INITIAL_STOCKING"
	OrderBoilingCompleted   OrderStatus = "BOILING_PROCESS_COMPLETED"
	OrderSplittingCompleted OrderStatus = "SPLITTING_PROCESS_COMPLETED"
	OrderPackedReady        OrderStatus = "PACKED_READY"
	OrderPaidClose          OrderStatus = "PAID_CLOSE"
)

// orderStatusRank gives each pipeline stage its position in the forward-only
// sequence. PAID_CLOSE is terminal.
var orderStatusRank = map[OrderStatus]int{
	OrderCreated:            0,
	OrderInitialStocking:    1,
	OrderBoilingCompleted:   2,
	OrderSplittingCompleted: 3,
	OrderPackedReady:        4,
	OrderPaidClose:          5,
}

// OrderStatuses lists the pipeline stages in forward order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderCreated,
		OrderInitialStocking,
		OrderBoilingCompleted,
		OrderSplittingCompleted,
		OrderPackedReady,
		OrderPaidClose,
	}
}

// IsValid reports whether s is a known pipeline stage.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// IsTerminal reports whether s closes the order.
func (s OrderStatus) IsTerminal() bool { return s == OrderPaidClose }

// Order represents a customer's paddy-processing order.
type Order struct {
	OrderID       string          `json:"orderID"`
	ClientID      string          `json:"clientID"`
	Name          string          `json:"name"`
	VillageName   string          `json:"villageName"`
	Address       string          `json:"address"`
	PhoneNumber   string          `json:"phoneNumber"`
	TypeOfPaddy   string          `json:"typeOfPaddy"`
	NumberOfBags  int             `json:"numberOfBags"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AdvanceAmount decimal.Decimal `json:"advanceAmount"`
	Status        OrderStatus     `json:"status"`
	AuditFields
}

// CanTransition checks whether the order may move to target. Progression is
// strictly forward and one stage at a time; setting the current status again
// is allowed as a no-op.
func (o *Order) CanTransition(target OrderStatus) error {
	currentRank, ok := orderStatusRank[o.Status]
	if !ok {
		return &apperrors.IllegalTransitionError{From: string(o.Status), To: string(target)}
	}
	targetRank, ok := orderStatusRank[target]
	if !ok {
		return &apperrors.IllegalTransitionError{From: string(o.Status), To: string(target)}
	}
	if targetRank == currentRank {
		return nil
	}
	if targetRank != currentRank+1 {
		return &apperrors.IllegalTransitionError{From: string(o.Status), To: string(target)}
	}
	return nil
}
