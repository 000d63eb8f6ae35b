package repositories

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
)

// EmployeeRepository defines storage operations for employees.
type EmployeeRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	FindEmployeeByID(ctx context.Context, clientID, employeeID string) (*domain.Employee, error)
	ListEmployeesByClient(ctx context.Context, clientID string) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, clientID, employeeID string) error
}
