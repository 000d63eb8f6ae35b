package mapping

import (
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/models"
)

// ToModelStock converts a domain Stock to a model Stock
func ToModelStock(d domain.Stock) models.Stock {
	return models.Stock{
		StockID:           d.StockID,
		ClientID:          d.ClientID,
		ItemType:          d.ItemType,
		AvailableQuantity: d.AvailableQuantity,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStock converts a model Stock to a domain Stock
func ToDomainStock(m models.Stock) domain.Stock {
	return domain.Stock{
		StockID:           m.StockID,
		ClientID:          m.ClientID,
		ItemType:          m.ItemType,
		AvailableQuantity: m.AvailableQuantity,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStockSlice converts a slice of model Stocks to a slice of domain Stocks
func ToDomainStockSlice(ms []models.Stock) []domain.Stock {
	ds := make([]domain.Stock, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStock(m)
	}
	return ds
}
