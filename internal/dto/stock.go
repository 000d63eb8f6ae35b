package dto

import (
	"time"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertStockRequest sets the current available quantity for one item type.
type UpsertStockRequest struct {
	ItemType          string          `json:"itemType" binding:"required"`
	AvailableQuantity decimal.Decimal `json:"availableQuantity"`
}

// StockResponse defines the data returned for a stock snapshot entry.
type StockResponse struct {
	StockID           string          `json:"stockID"`
	ItemType          string          `json:"itemType"`
	AvailableQuantity decimal.Decimal `json:"availableQuantity"`
	LastUpdatedAt     time.Time       `json:"updatedAt"`
}

// ToStockResponse converts a domain.Stock to StockResponse DTO.
func ToStockResponse(s *domain.Stock) StockResponse {
	return StockResponse{
		StockID:           s.StockID,
		ItemType:          s.ItemType,
		AvailableQuantity: s.AvailableQuantity,
		LastUpdatedAt:     s.LastUpdatedAt,
	}
}

// ToListStockResponse converts a slice of domain.Stock to response DTOs.
func ToListStockResponse(stocks []domain.Stock) []StockResponse {
	res := make([]StockResponse, len(stocks))
	for i, s := range stocks {
		res[i] = ToStockResponse(&s)
	}
	return res
}
