package employee

import (
	"context"
)

// EmployeeService defines business logic for employee master data
type EmployeeService interface {
	// CreateEmployee registers a new employee, applying statutory defaults
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by emp_id
	GetEmployee(ctx context.Context, empID string) (EmployeeResponse, error)

	// ListEmployees lists all employees
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee applies a partial update (emp_id is immutable)
	UpdateEmployee(ctx context.Context, empID string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee; attendance records are kept
	DeleteEmployee(ctx context.Context, empID string) error

	// SeedSampleData loads the demo dataset unless employees already exist.
	// It reports whether anything was written.
	SeedSampleData(ctx context.Context) (bool, error)
}
