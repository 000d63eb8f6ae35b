package mapping

import (
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/models"
)

// ToModelWage converts a domain Wage to a model Wage. The derived pending
// amount is dropped; it is recomputed on every read.
func ToModelWage(d domain.Wage) models.Wage {
	return models.Wage{
		WageID:       d.WageID,
		ClientID:     d.ClientID,
		EmployeeID:   d.EmployeeID,
		EmployeeName: d.EmployeeName,
		TotalWage:    d.TotalWage,
		AdvanceWage:  d.AdvanceWage,
		AdvanceDebt:  d.AdvanceDebt,
		Bags:         d.Bags,
		TypeOfWork:   string(d.TypeOfWork),
		MachineType:  d.MachineType,
		Date:         d.Date,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWage converts a model Wage to a domain Wage
func ToDomainWage(m models.Wage) domain.Wage {
	return domain.Wage{
		WageID:       m.WageID,
		ClientID:     m.ClientID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		TotalWage:    m.TotalWage,
		AdvanceWage:  m.AdvanceWage,
		AdvanceDebt:  m.AdvanceDebt,
		Bags:         m.Bags,
		TypeOfWork:   domain.WorkType(m.TypeOfWork),
		MachineType:  m.MachineType,
		Date:         m.Date,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWageSlice converts a slice of model Wages to a slice of domain Wages
func ToDomainWageSlice(ms []models.Wage) []domain.Wage {
	ds := make([]domain.Wage, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWage(m)
	}
	return ds
}
