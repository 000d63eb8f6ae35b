package mapping

import (
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee. The derived
// pending salary is dropped; it is recomputed on every read.
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:             d.EmployeeID,
		ClientID:               d.ClientID,
		Name:                   d.Name,
		Gender:                 d.Gender,
		Address:                d.Address,
		DOB:                    d.DOB,
		PhoneNumber:            d.PhoneNumber,
		EmergencyContactNumber: d.EmergencyContactNumber,
		MaritalStatus:          d.MaritalStatus,
		Salary:                 d.Salary,
		DebtAmount:             d.DebtAmount,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:             m.EmployeeID,
		ClientID:               m.ClientID,
		Name:                   m.Name,
		Gender:                 m.Gender,
		Address:                m.Address,
		DOB:                    m.DOB,
		PhoneNumber:            m.PhoneNumber,
		EmergencyContactNumber: m.EmergencyContactNumber,
		MaritalStatus:          m.MaritalStatus,
		Salary:                 m.Salary,
		DebtAmount:             m.DebtAmount,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to a slice of domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
