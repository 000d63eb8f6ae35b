package mapping

import (
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/models"
)

// ToModelIncome converts a domain Income to a model Income
func ToModelIncome(d domain.Income) models.Income {
	return models.Income{
		IncomeID:    d.IncomeID,
		ClientID:    d.ClientID,
		Item:        d.Item,
		Description: d.Description,
		Amount:      d.Amount,
		Date:        d.Date,
		RecordedBy:  d.RecordedBy,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncome converts a model Income to a domain Income
func ToDomainIncome(m models.Income) domain.Income {
	return domain.Income{
		IncomeID:    m.IncomeID,
		ClientID:    m.ClientID,
		Item:        m.Item,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		RecordedBy:  m.RecordedBy,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainIncomeSlice converts a slice of model Incomes to a slice of domain Incomes
func ToDomainIncomeSlice(ms []models.Income) []domain.Income {
	ds := make([]domain.Income, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIncome(m)
	}
	return ds
}
