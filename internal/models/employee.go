package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the persisted form of a salaried worker. The pending salary is
// derived at read time and not stored.
type Employee struct {
	EmployeeID             string          `db:"employee_id"`
	ClientID               string          `db:"client_id"`
	Name                   string          `db:"name"`
	Gender                 string          `db:"gender"`
	Address                string          `db:"address"`
	DOB                    time.Time       `db:"dob"`
	PhoneNumber            string          `db:"phone_number"`
	EmergencyContactNumber string          `db:"emergency_contact_number"`
	MaritalStatus          string          `db:"marital_status"`
	Salary                 decimal.Decimal `db:"salary"`
	DebtAmount             decimal.Decimal `db:"debt_amount"`
	AuditFields
}
