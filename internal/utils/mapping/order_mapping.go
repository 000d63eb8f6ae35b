package mapping

import (
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/models"
)

// ToModelOrder converts a domain Order to a model Order
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:       d.OrderID,
		ClientID:      d.ClientID,
		Name:          d.Name,
		VillageName:   d.VillageName,
		Address:       d.Address,
		PhoneNumber:   d.PhoneNumber,
		TypeOfPaddy:   d.TypeOfPaddy,
		NumberOfBags:  d.NumberOfBags,
		TotalAmount:   d.TotalAmount,
		AdvanceAmount: d.AdvanceAmount,
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrder converts a model Order to a domain Order
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:       m.OrderID,
		ClientID:      m.ClientID,
		Name:          m.Name,
		VillageName:   m.VillageName,
		Address:       m.Address,
		PhoneNumber:   m.PhoneNumber,
		TypeOfPaddy:   m.TypeOfPaddy,
		NumberOfBags:  m.NumberOfBags,
		TotalAmount:   m.TotalAmount,
		AdvanceAmount: m.AdvanceAmount,
		Status:        domain.OrderStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrderSlice converts a slice of model Orders to a slice of domain Orders
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}
