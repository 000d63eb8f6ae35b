package dto

import (
	"time"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWageRequest defines the data needed to record a wage entry.
// Date is a calendar date in YYYY-MM-DD form.
type CreateWageRequest struct {
	EmployeeID   string          `json:"employeeID"`
	EmployeeName string          `json:"employeeName" binding:"required"`
	TotalWage    decimal.Decimal `json:"totalWage" binding:"required"`
	AdvanceWage  decimal.Decimal `json:"advanceWage"`
	AdvanceDebt  decimal.Decimal `json:"advanceDebt"`
	Bags         int             `json:"bags"`
	TypeOfWork   domain.WorkType `json:"typeOfWork" binding:"required,oneof=boiling drying packing loading unloading other"`
	MachineType  string          `json:"machineType"`
	Date         string          `json:"date" binding:"required,datetime=2006-01-02"`
	Notes        string          `json:"notes"`
}

// UpdateWageRequest mirrors CreateWageRequest for a full-field update.
type UpdateWageRequest = CreateWageRequest

// WageResponse defines the data returned for a wage entry, including the
// derived pending amount.
type WageResponse struct {
	WageID        string          `json:"wageID"`
	EmployeeID    string          `json:"employeeID"`
	EmployeeName  string          `json:"employeeName"`
	TotalWage     decimal.Decimal `json:"totalWage"`
	AdvanceWage   decimal.Decimal `json:"advanceWage"`
	AdvanceDebt   decimal.Decimal `json:"advanceDebt"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	Bags          int             `json:"bags"`
	TypeOfWork    domain.WorkType `json:"typeOfWork"`
	MachineType   string          `json:"machineType"`
	Date          string          `json:"date"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToWageResponse converts a domain.Wage to WageResponse DTO.
func ToWageResponse(w *domain.Wage) WageResponse {
	return WageResponse{
		WageID:        w.WageID,
		EmployeeID:    w.EmployeeID,
		EmployeeName:  w.EmployeeName,
		TotalWage:     w.TotalWage,
		AdvanceWage:   w.AdvanceWage,
		AdvanceDebt:   w.AdvanceDebt,
		PendingAmount: w.PendingAmount,
		Bags:          w.Bags,
		TypeOfWork:    w.TypeOfWork,
		MachineType:   w.MachineType,
		Date:          w.Date.Format("2006-01-02"),
		Notes:         w.Notes,
		CreatedAt:     w.CreatedAt,
	}
}

// ToListWageResponse converts a slice of domain.Wage to response DTOs.
func ToListWageResponse(wages []domain.Wage) []WageResponse {
	res := make([]WageResponse, len(wages))
	for i, w := range wages {
		res[i] = ToWageResponse(&w)
	}
	return res
}
