package dto

import (
	"time"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one sale line. Amount is accepted for compatibility with
// older clients but ignored; the service recomputes it from quantity x rate.
type SaleItemRequest struct {
	ItemType domain.SaleItemType `json:"itemType" binding:"required"`
	Quantity decimal.Decimal     `json:"quantity"`
	Rate     decimal.Decimal     `json:"rate"`
	Amount   decimal.Decimal     `json:"amount"`
}

// CreateSaleRequest defines the data needed to record a sale.
type CreateSaleRequest struct {
	Name          string               `json:"name" binding:"required"`
	PhoneNumber   string               `json:"phoneNumber"`
	Address       string               `json:"address"`
	Items         []SaleItemRequest    `json:"items" binding:"required,min=1,dive"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus" binding:"required,oneof=Paid Pending 'Partially Paid'"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required"`
}

// UpdateSaleRequest mirrors CreateSaleRequest for a full-field update.
type UpdateSaleRequest = CreateSaleRequest

// SaleItemResponse is one recomputed sale line.
type SaleItemResponse struct {
	ItemType domain.SaleItemType `json:"itemType"`
	Quantity decimal.Decimal     `json:"quantity"`
	Rate     decimal.Decimal     `json:"rate"`
	Amount   decimal.Decimal     `json:"amount"`
}

// SaleResponse defines the data returned for a sale. TotalAmount is the
// authoritative recomputed sum over items.
type SaleResponse struct {
	SaleID        string               `json:"saleID"`
	Name          string               `json:"name"`
	PhoneNumber   string               `json:"phoneNumber"`
	Address       string               `json:"address"`
	Items         []SaleItemResponse   `json:"items"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = SaleItemResponse{
			ItemType: it.ItemType,
			Quantity: it.Quantity,
			Rate:     it.Rate,
			Amount:   it.Amount,
		}
	}
	return SaleResponse{
		SaleID:        s.SaleID,
		Name:          s.Name,
		PhoneNumber:   s.PhoneNumber,
		Address:       s.Address,
		Items:         items,
		TotalAmount:   s.TotalAmount,
		PaymentStatus: s.PaymentStatus,
		PaymentMethod: s.PaymentMethod,
		CreatedAt:     s.CreatedAt,
	}
}

// ToListSaleResponse converts a slice of domain.Sale to response DTOs.
func ToListSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i, s := range sales {
		res[i] = ToSaleResponse(&s)
	}
	return res
}
