package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a salaried mill worker.
type Employee struct {
	EmployeeID             string          `json:"employeeID"`
	ClientID               string          `json:"clientID"`
	Name                   string          `json:"name"`
	Gender                 string          `json:"gender"`
	Address                string          `json:"address"`
	DOB                    time.Time       `json:"dob"`
	PhoneNumber            string          `json:"phoneNumber"`
	EmergencyContactNumber string          `json:"emergencyContactNumber"`
	MaritalStatus          string          `json:"maritalStatus"`
	Salary                 decimal.Decimal `json:"salary"`
	DebtAmount             decimal.Decimal `json:"debtAmount"`

	// PendingSalary = max(0, Salary - DebtAmount). Derived by reconciliation.
	PendingSalary decimal.Decimal `json:"pendingSalary"`

	AuditFields
}
