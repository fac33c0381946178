package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffledger/hrpay-backend-go/internal/domain/attendance"
	"github.com/staffledger/hrpay-backend-go/internal/domain/employee"
	"github.com/staffledger/hrpay-backend-go/internal/fixtures"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

// NewEmployeeService wires the employee business logic. The attendance
// repository is only touched when seeding the demo dataset.
func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	pfPercent := employee.DefaultPFPercent
	if req.PFPercent != nil {
		pfPercent = *req.PFPercent
	}

	esiPercent := employee.DefaultESIPercent
	if req.ESIPercent != nil {
		esiPercent = *req.ESIPercent
	}

	pt := employee.DefaultPT
	if req.PT != nil {
		pt = *req.PT
	}

	newEmployee := employee.Employee{
		EmpID:       req.EmpID,
		Name:        req.Name,
		Department:  req.Department,
		Designation: req.Designation,
		JoinDate:    req.JoinDate,
		BasicSalary: decimal.NewFromFloat(req.BasicSalary),
		HRA:         decimal.NewFromFloat(req.HRA),
		Allowance:   decimal.NewFromFloat(req.Allowance),
		PFPercent:   decimal.NewFromFloat(pfPercent),
		ESIPercent:  decimal.NewFromFloat(esiPercent),
		PT:          decimal.NewFromFloat(pt),
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, empID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByEmpID(ctx, empID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapToEmployeeResponse(emp))
	}

	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, empID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, empID, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService. Attendance rows
// for the employee stay in place and keep serving history reads.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, empID string) error {
	return s.employeeRepo.Delete(ctx, empID)
}

// SeedSampleData implements employee.EmployeeService. The dataset is
// only written into an empty employee collection, so repeated calls
// are harmless.
func (s *EmployeeServiceImpl) SeedSampleData(ctx context.Context) (bool, error) {
	count, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	for _, emp := range fixtures.SampleEmployees() {
		if _, err := s.employeeRepo.Create(ctx, emp); err != nil {
			return false, fmt.Errorf("failed to seed employee %s: %w", emp.EmpID, err)
		}
	}

	for _, att := range fixtures.SampleAttendance() {
		if _, err := s.attendanceRepo.Create(ctx, att); err != nil {
			return false, fmt.Errorf("failed to seed attendance for %s: %w", att.EmpID, err)
		}
	}

	return true, nil
}

func mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          emp.ID,
		EmpID:       emp.EmpID,
		Name:        emp.Name,
		Department:  emp.Department,
		Designation: emp.Designation,
		JoinDate:    emp.JoinDate,
		BasicSalary: emp.BasicSalary.InexactFloat64(),
		HRA:         emp.HRA.InexactFloat64(),
		Allowance:   emp.Allowance.InexactFloat64(),
		PFPercent:   emp.PFPercent.InexactFloat64(),
		ESIPercent:  emp.ESIPercent.InexactFloat64(),
		PT:          emp.PT.InexactFloat64(),
		CreatedAt:   emp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
