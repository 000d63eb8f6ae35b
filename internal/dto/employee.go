package dto

import (
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to register an employee.
type CreateEmployeeRequest struct {
	Name                   string          `json:"name" binding:"required"`
	Gender                 string          `json:"gender"`
	Address                string          `json:"address"`
	DOB                    string          `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	PhoneNumber            string          `json:"phoneNumber"`
	EmergencyContactNumber string          `json:"emergencyContactNumber"`
	MaritalStatus          string          `json:"maritalStatus"`
	Salary                 decimal.Decimal `json:"salary" binding:"required"`
	DebtAmount             decimal.Decimal `json:"debtAmount"`
}

// UpdateEmployeeRequest mirrors CreateEmployeeRequest for a full-field update.
type UpdateEmployeeRequest = CreateEmployeeRequest

// EmployeeResponse defines the data returned for an employee, including the
// derived pending salary.
type EmployeeResponse struct {
	EmployeeID             string          `json:"employeeID"`
	Name                   string          `json:"name"`
	Gender                 string          `json:"gender"`
	Address                string          `json:"address"`
	DOB                    string          `json:"dob"`
	PhoneNumber            string          `json:"phoneNumber"`
	EmergencyContactNumber string          `json:"emergencyContactNumber"`
	MaritalStatus          string          `json:"maritalStatus"`
	Salary                 decimal.Decimal `json:"salary"`
	DebtAmount             decimal.Decimal `json:"debtAmount"`
	PendingSalary          decimal.Decimal `json:"pendingSalary"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	dob := ""
	if !e.DOB.IsZero() {
		dob = e.DOB.Format("2006-01-02")
	}
	return EmployeeResponse{
		EmployeeID:             e.EmployeeID,
		Name:                   e.Name,
		Gender:                 e.Gender,
		Address:                e.Address,
		DOB:                    dob,
		PhoneNumber:            e.PhoneNumber,
		EmergencyContactNumber: e.EmergencyContactNumber,
		MaritalStatus:          e.MaritalStatus,
		Salary:                 e.Salary,
		DebtAmount:             e.DebtAmount,
		PendingSalary:          e.PendingSalary,
	}
}

// ToListEmployeeResponse converts a slice of domain.Employee to response DTOs.
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = ToEmployeeResponse(&e)
	}
	return res
}
