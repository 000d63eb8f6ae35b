package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	portsrepo "github.com/richmill123/rice_mill_backend/internal/core/ports/repositories"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
	"github.com/richmill123/rice_mill_backend/internal/dto"
)

// employeeService implements the EmployeeSvcFacade interface.
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepository
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(repo portsrepo.EmployeeRepository) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: repo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func employeeFromRequest(req dto.CreateEmployeeRequest) (domain.Employee, error) {
	var dob time.Time
	if req.DOB != "" {
		parsed, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			return domain.Employee{}, fmt.Errorf("invalid date of birth %q: %w", req.DOB, err)
		}
		dob = parsed
	}
	return domain.Employee{
		Name:                   req.Name,
		Gender:                 req.Gender,
		Address:                req.Address,
		DOB:                    dob,
		PhoneNumber:            req.PhoneNumber,
		EmergencyContactNumber: req.EmergencyContactNumber,
		MaritalStatus:          req.MaritalStatus,
		Salary:                 req.Salary,
		DebtAmount:             req.DebtAmount,
	}, nil
}

// CreateEmployee validates, reconciles and stores a new employee.
func (s *employeeService) CreateEmployee(ctx context.Context, clientID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	employee, err := employeeFromRequest(req)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	employee.EmployeeID = uuid.NewString()
	employee.ClientID = clientID
	employee.CreatedAt = now
	employee.LastUpdatedAt = now

	employee, err = ReconcileEmployee(employee)
	if err != nil {
		s.LogError(ctx, err, "Employee failed validation", slog.String("client_id", clientID))
		return nil, err
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}
	return &employee, nil
}

// GetEmployeeByID retrieves one employee with the derived pending salary.
func (s *employeeService) GetEmployeeByID(ctx context.Context, clientID, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, clientID, employeeID)
	if err != nil {
		return nil, err
	}
	reconciled, err := ReconcileEmployee(*employee)
	if err != nil {
		return nil, err
	}
	return &reconciled, nil
}

// ListEmployees retrieves the client's employees, reconciled.
func (s *employeeService) ListEmployees(ctx context.Context, clientID string) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployeesByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	out := make([]domain.Employee, len(employees))
	for i, e := range employees {
		reconciled, err := ReconcileEmployee(e)
		if err != nil {
			return nil, err
		}
		out[i] = reconciled
	}
	return out, nil
}

// UpdateEmployee performs a full-field update of an employee.
func (s *employeeService) UpdateEmployee(ctx context.Context, clientID, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	existing, err := s.employeeRepo.FindEmployeeByID(ctx, clientID, employeeID)
	if err != nil {
		return nil, err
	}

	updated, err := employeeFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.EmployeeID = existing.EmployeeID
	updated.ClientID = existing.ClientID
	updated.CreatedAt = existing.CreatedAt
	updated.LastUpdatedAt = time.Now().UTC()

	updated, err = ReconcileEmployee(updated)
	if err != nil {
		s.LogError(ctx, err, "Employee update failed validation", slog.String("employee_id", employeeID))
		return nil, err
	}

	if err := s.employeeRepo.UpdateEmployee(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee %s: %w", employeeID, err)
	}
	return &updated, nil
}

// DeleteEmployee removes an employee.
func (s *employeeService) DeleteEmployee(ctx context.Context, clientID, employeeID string) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, clientID, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return err
	}
	return nil
}
