package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	portsrepo "github.com/richmill123/rice_mill_backend/internal/core/ports/repositories"
	"github.com/richmill123/rice_mill_backend/internal/models"
	"github.com/richmill123/rice_mill_backend/internal/utils/mapping"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepository {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EmployeeRepository = (*PgxEmployeeRepository)(nil)

const selectEmployeeFields = `
	employee_id, client_id, name, gender, address, dob, phone_number,
	emergency_contact_number, marital_status, salary, debt_amount,
	created_at, last_updated_at`

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.ClientID,
		&m.Name,
		&m.Gender,
		&m.Address,
		&m.DOB,
		&m.PhoneNumber,
		&m.EmergencyContactNumber,
		&m.MaritalStatus,
		&m.Salary,
		&m.DebtAmount,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveEmployee inserts a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	modelEmployee := mapping.ToModelEmployee(employee)

	query := `
		INSERT INTO employees (` + selectEmployeeFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelEmployee.EmployeeID,
		modelEmployee.ClientID,
		modelEmployee.Name,
		modelEmployee.Gender,
		modelEmployee.Address,
		modelEmployee.DOB,
		modelEmployee.PhoneNumber,
		modelEmployee.EmergencyContactNumber,
		modelEmployee.MaritalStatus,
		modelEmployee.Salary,
		modelEmployee.DebtAmount,
		modelEmployee.CreatedAt,
		modelEmployee.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: employee with ID %s already exists", apperrors.ErrDuplicate, modelEmployee.EmployeeID)
		}
		return fmt.Errorf("failed to save employee %s: %w", modelEmployee.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByID retrieves one employee scoped to the owning client.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, clientID, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT ` + selectEmployeeFields + `
		FROM employees
		WHERE client_id = $1 AND employee_id = $2;
	`
	modelEmployee, err := scanEmployee(r.Pool.QueryRow(ctx, query, clientID, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}

	domainEmployee := mapping.ToDomainEmployee(modelEmployee)
	return &domainEmployee, nil
}

// ListEmployeesByClient retrieves all of the client's employees.
func (r *PgxEmployeeRepository) ListEmployeesByClient(ctx context.Context, clientID string) ([]domain.Employee, error) {
	query := `
		SELECT ` + selectEmployeeFields + `
		FROM employees
		WHERE client_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	modelEmployees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		return scanEmployee(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Employee{}, nil
		}
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}

	return mapping.ToDomainEmployeeSlice(modelEmployees), nil
}

// UpdateEmployee performs a full-field update of the employee row.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	modelEmployee := mapping.ToModelEmployee(employee)

	query := `
		UPDATE employees SET
			name = $3,
			gender = $4,
			address = $5,
			dob = $6,
			phone_number = $7,
			emergency_contact_number = $8,
			marital_status = $9,
			salary = $10,
			debt_amount = $11,
			last_updated_at = $12
		WHERE client_id = $1 AND employee_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelEmployee.ClientID,
		modelEmployee.EmployeeID,
		modelEmployee.Name,
		modelEmployee.Gender,
		modelEmployee.Address,
		modelEmployee.DOB,
		modelEmployee.PhoneNumber,
		modelEmployee.EmergencyContactNumber,
		modelEmployee.MaritalStatus,
		modelEmployee.Salary,
		modelEmployee.DebtAmount,
		modelEmployee.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", modelEmployee.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEmployee removes the employee row.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, clientID, employeeID string) error {
	query := `DELETE FROM employees WHERE client_id = $1 AND employee_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, clientID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
