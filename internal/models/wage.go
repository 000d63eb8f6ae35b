package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wage is the persisted form of a wage entry. The pending amount is derived
// at read time and not stored.
type Wage struct {
	WageID       string          `db:"wage_id"`
	ClientID     string          `db:"client_id"`
	EmployeeID   string          `db:"employee_id"`
	EmployeeName string          `db:"employee_name"`
	TotalWage    decimal.Decimal `db:"total_wage"`
	AdvanceWage  decimal.Decimal `db:"advance_wage"`
	AdvanceDebt  decimal.Decimal `db:"advance_debt"`
	Bags         int             `db:"bags"`
	TypeOfWork   string          `db:"type_of_work"`
	MachineType  string          `db:"machine_type"`
	Date         time.Time       `db:"date"`
	Notes        string          `db:"notes"`
	AuditFields
}
