package dto

import (
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest defines the data needed to record an income entry.
type CreateIncomeRequest struct {
	Item        string          `json:"item" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	RecordedBy  string          `json:"recordedBy"`
}

// UpdateIncomeRequest mirrors CreateIncomeRequest for a full-field update.
type UpdateIncomeRequest = CreateIncomeRequest

// IncomeResponse defines the data returned for an income entry.
type IncomeResponse struct {
	IncomeID    string          `json:"incomeID"`
	Item        string          `json:"item"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	RecordedBy  string          `json:"recordedBy"`
}

// ToIncomeResponse converts a domain.Income to IncomeResponse DTO.
func ToIncomeResponse(in *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:    in.IncomeID,
		Item:        in.Item,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date.Format("2006-01-02"),
		RecordedBy:  in.RecordedBy,
	}
}

// ToListIncomeResponse converts a slice of domain.Income to response DTOs.
func ToListIncomeResponse(income []domain.Income) []IncomeResponse {
	res := make([]IncomeResponse, len(income))
	for i, in := range income {
		res[i] = ToIncomeResponse(&in)
	}
	return res
}
