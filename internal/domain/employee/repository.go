package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByEmpID(ctx context.Context, empID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, empID string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, empID string) error
	Count(ctx context.Context) (int64, error)
}
