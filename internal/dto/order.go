package dto

import (
	"time"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the data needed to create a new order.
// New orders always start in CREATED; the status is not client-settable here.
type CreateOrderRequest struct {
	Name          string          `json:"name" binding:"required"`
	VillageName   string          `json:"villageName"`
	Address       string          `json:"address"`
	PhoneNumber   string          `json:"phoneNumber"`
	TypeOfPaddy   string          `json:"typeOfPaddy" binding:"required"`
	NumberOfBags  int             `json:"numberOfBags" binding:"required,gt=0"`
	TotalAmount   decimal.Decimal `json:"totalAmount" binding:"required"`
	AdvanceAmount decimal.Decimal `json:"advanceAmount"`
}

// UpdateOrderRequest defines the data allowed for a full-field order update.
// Status changes go through the transition endpoint instead.
type UpdateOrderRequest struct {
	Name          string          `json:"name" binding:"required"`
	VillageName   string          `json:"villageName"`
	Address       string          `json:"address"`
	PhoneNumber   string          `json:"phoneNumber"`
	TypeOfPaddy   string          `json:"typeOfPaddy" binding:"required"`
	NumberOfBags  int             `json:"numberOfBags" binding:"required,gt=0"`
	TotalAmount   decimal.Decimal `json:"totalAmount" binding:"required"`
	AdvanceAmount decimal.Decimal `json:"advanceAmount"`
}

// TransitionOrderRequest carries the requested pipeline stage.
type TransitionOrderRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required,orderstatus"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID       string             `json:"orderID"`
	Name          string             `json:"name"`
	VillageName   string             `json:"villageName"`
	Address       string             `json:"address"`
	PhoneNumber   string             `json:"phoneNumber"`
	TypeOfPaddy   string             `json:"typeOfPaddy"`
	NumberOfBags  int                `json:"numberOfBags"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	AdvanceAmount decimal.Decimal    `json:"advanceAmount"`
	Status        domain.OrderStatus `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"updatedAt"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:       o.OrderID,
		Name:          o.Name,
		VillageName:   o.VillageName,
		Address:       o.Address,
		PhoneNumber:   o.PhoneNumber,
		TypeOfPaddy:   o.TypeOfPaddy,
		NumberOfBags:  o.NumberOfBags,
		TotalAmount:   o.TotalAmount,
		AdvanceAmount: o.AdvanceAmount,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
		LastUpdatedAt: o.LastUpdatedAt,
	}
}

// ToListOrderResponse converts a slice of domain.Order to response DTOs.
func ToListOrderResponse(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i, o := range orders {
		res[i] = ToOrderResponse(&o)
	}
	return res
}
