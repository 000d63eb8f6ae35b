package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkType classifies the labor a wage entry pays for.
type WorkType string

const (
	WorkBoiling   WorkType = "boiling"
	WorkDrying    WorkType = "drying"
	WorkPacking   WorkType = "packing"
	WorkLoading   WorkType = "loading"
	WorkUnloading WorkType = "unloading"
	WorkOther     WorkType = "other"
)

// Wage records a payment owed to a worker for a day's processing work.
// AdvanceDebt is outstanding debt carried forward from earlier advances.
type Wage struct {
	WageID       string          `json:"wageID"`
	ClientID     string          `json:"clientID"`
	EmployeeID   string          `json:"employeeID"`
	EmployeeName string          `json:"employeeName"`
	TotalWage    decimal.Decimal `json:"totalWage"`
	AdvanceWage  decimal.Decimal `json:"advanceWage"`
	AdvanceDebt  decimal.Decimal `json:"advanceDebt"`
	Bags         int             `json:"bags"`
	TypeOfWork   WorkType        `json:"typeOfWork"`
	MachineType  string          `json:"machineType"`
	Date         time.Time       `json:"date"`
	Notes        string          `json:"notes"`

	// PendingAmount = TotalWage - AdvanceWage - AdvanceDebt. Derived by
	// reconciliation; negative means the worker was over-advanced and the
	// value is surfaced as-is.
	PendingAmount decimal.Decimal `json:"pendingAmount"`

	AuditFields
}
