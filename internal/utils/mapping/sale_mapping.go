package mapping

import (
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	items := make([]models.SaleItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = models.SaleItem{
			ItemType: string(item.ItemType),
			Quantity: item.Quantity,
			Rate:     item.Rate,
			Amount:   item.Amount,
		}
	}
	return models.Sale{
		SaleID:        d.SaleID,
		ClientID:      d.ClientID,
		Name:          d.Name,
		PhoneNumber:   d.PhoneNumber,
		Address:       d.Address,
		Items:         items,
		TotalAmount:   d.TotalAmount,
		PaymentStatus: string(d.PaymentStatus),
		PaymentMethod: string(d.PaymentMethod),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	items := make([]domain.SaleItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = domain.SaleItem{
			ItemType: domain.SaleItemType(item.ItemType),
			Quantity: item.Quantity,
			Rate:     item.Rate,
			Amount:   item.Amount,
		}
	}
	return domain.Sale{
		SaleID:        m.SaleID,
		ClientID:      m.ClientID,
		Name:          m.Name,
		PhoneNumber:   m.PhoneNumber,
		Address:       m.Address,
		Items:         items,
		TotalAmount:   m.TotalAmount,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSaleSlice converts a slice of model Sales to a slice of domain Sales
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}
