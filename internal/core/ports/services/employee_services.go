package services

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/dto"
)

// EmployeeSvcFacade defines operations on employees. Returned employees always
// carry the derived pending salary.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, clientID string, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, clientID, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, clientID string) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, clientID, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, clientID, employeeID string) error
}
