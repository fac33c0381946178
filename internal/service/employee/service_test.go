package employee

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/hrpay-backend-go/internal/domain/attendance"
	"github.com/staffledger/hrpay-backend-go/internal/domain/employee"
	"github.com/staffledger/hrpay-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	createFn     func(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error)
	getByEmpIDFn func(ctx context.Context, empID string) (employee.Employee, error)
	listFn       func(ctx context.Context) ([]employee.Employee, error)
	updateFn     func(ctx context.Context, empID string, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	deleteFn     func(ctx context.Context, empID string) error
	countFn      func(ctx context.Context) (int64, error)
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return f.createFn(ctx, newEmployee)
}

func (f *fakeEmployeeRepo) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	return f.getByEmpIDFn(ctx, empID)
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.listFn(ctx)
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, empID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return f.updateFn(ctx, empID, req)
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, empID string) error {
	return f.deleteFn(ctx, empID)
}

func (f *fakeEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return f.countFn(ctx)
}

type fakeAttendanceRepo struct {
	createFn func(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error)
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	return f.createFn(ctx, newAttendance)
}

func (f *fakeAttendanceRepo) GetByEmpIDAndMonth(ctx context.Context, empID, month string) (attendance.Attendance, error) {
	panic("unexpected GetByEmpIDAndMonth call")
}

func (f *fakeAttendanceRepo) List(ctx context.Context) ([]attendance.Attendance, error) {
	panic("unexpected List call")
}

func (f *fakeAttendanceRepo) ListByEmpID(ctx context.Context, empID string) ([]attendance.Attendance, error) {
	panic("unexpected ListByEmpID call")
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, empID, month string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	panic("unexpected Update call")
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, empID, month string) error {
	panic("unexpected Delete call")
}

func stampCreate(e employee.Employee) (employee.Employee, error) {
	e.ID = "11111111-1111-1111-1111-111111111111"
	e.CreatedAt = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	return e, nil
}

func TestEmployeeService_CreateEmployee_AppliesStatutoryDefaults(t *testing.T) {
	var captured employee.Employee
	repo := &fakeEmployeeRepo{
		createFn: func(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
			captured = newEmployee
			return stampCreate(newEmployee)
		},
	}
	service := NewEmployeeService(repo, &fakeAttendanceRepo{})

	req := employee.CreateEmployeeRequest{
		EmpID:       "EMP001",
		Name:        "Rajesh Kumar",
		Department:  "Engineering",
		Designation: "Senior Software Engineer",
		JoinDate:    "2022-01-15",
		BasicSalary: 40000,
		HRA:         16000,
		Allowance:   8000,
	}

	// Act
	result, err := service.CreateEmployee(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "12", captured.PFPercent.String())
	assert.Equal(t, "0.75", captured.ESIPercent.String())
	assert.Equal(t, "200", captured.PT.String())
	assert.Equal(t, 12.0, result.PFPercent)
	assert.Equal(t, 0.75, result.ESIPercent)
	assert.Equal(t, 200.0, result.PT)
	assert.Equal(t, "EMP001", result.EmpID)
	assert.Equal(t, "2025-01-10T09:00:00Z", result.CreatedAt)
}

func TestEmployeeService_CreateEmployee_KeepsExplicitRates(t *testing.T) {
	var captured employee.Employee
	repo := &fakeEmployeeRepo{
		createFn: func(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
			captured = newEmployee
			return stampCreate(newEmployee)
		},
	}
	service := NewEmployeeService(repo, &fakeAttendanceRepo{})

	pf, esi, pt := 10.0, 1.5, 150.0
	req := employee.CreateEmployeeRequest{
		EmpID:       "EMP010",
		Name:        "Asha Verma",
		Department:  "Finance",
		Designation: "Analyst",
		JoinDate:    "2024-04-01",
		BasicSalary: 30000,
		HRA:         12000,
		Allowance:   5000,
		PFPercent:   &pf,
		ESIPercent:  &esi,
		PT:          &pt,
	}

	// Act
	_, err := service.CreateEmployee(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "10", captured.PFPercent.String())
	assert.Equal(t, "1.5", captured.ESIPercent.String())
	assert.Equal(t, "150", captured.PT.String())
}

func TestEmployeeService_CreateEmployee_ValidationSkipsRepo(t *testing.T) {
	repoCalled := false
	repo := &fakeEmployeeRepo{
		createFn: func(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
			repoCalled = true
			return newEmployee, nil
		},
	}
	service := NewEmployeeService(repo, &fakeAttendanceRepo{})

	// Act
	_, err := service.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{})

	// Assert
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.False(t, repoCalled)
}

func TestEmployeeService_CreateEmployee_DuplicatePropagates(t *testing.T) {
	repo := &fakeEmployeeRepo{
		createFn: func(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
			return employee.Employee{}, employee.ErrEmpIDExists
		},
	}
	service := NewEmployeeService(repo, &fakeAttendanceRepo{})

	req := employee.CreateEmployeeRequest{
		EmpID:       "EMP001",
		Name:        "Rajesh Kumar",
		Department:  "Engineering",
		Designation: "Senior Software Engineer",
		JoinDate:    "2022-01-15",
		BasicSalary: 40000,
	}

	// Act
	_, err := service.CreateEmployee(context.Background(), req)

	// Assert
	assert.ErrorIs(t, err, employee.ErrEmpIDExists)
}

func TestEmployeeService_UpdateEmployee_RequiresChanges(t *testing.T) {
	repoCalled := false
	repo := &fakeEmployeeRepo{
		updateFn: func(ctx context.Context, empID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
			repoCalled = true
			return employee.Employee{}, nil
		},
	}
	service := NewEmployeeService(repo, &fakeAttendanceRepo{})

	// Act
	_, err := service.UpdateEmployee(context.Background(), "EMP001", employee.UpdateEmployeeRequest{})

	// Assert
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.False(t, repoCalled)
}

func TestEmployeeService_SeedSampleData_SkipsWhenDataExists(t *testing.T) {
	created := 0
	repo := &fakeEmployeeRepo{
		countFn: func(ctx context.Context) (int64, error) { return 5, nil },
		createFn: func(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
			created++
			return newEmployee, nil
		},
	}
	service := NewEmployeeService(repo, &fakeAttendanceRepo{})

	// Act
	seeded, err := service.SeedSampleData(context.Background())

	// Assert
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Zero(t, created)
}

func TestEmployeeService_SeedSampleData_LoadsDataset(t *testing.T) {
	var employees []employee.Employee
	var records []attendance.Attendance

	employeeRepo := &fakeEmployeeRepo{
		countFn: func(ctx context.Context) (int64, error) { return 0, nil },
		createFn: func(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
			employees = append(employees, newEmployee)
			return stampCreate(newEmployee)
		},
	}
	attendanceRepo := &fakeAttendanceRepo{
		createFn: func(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
			records = append(records, newAttendance)
			return newAttendance, nil
		},
	}
	service := NewEmployeeService(employeeRepo, attendanceRepo)

	// Act
	seeded, err := service.SeedSampleData(context.Background())

	// Assert
	require.NoError(t, err)
	assert.True(t, seeded)
	require.Len(t, employees, 5)
	require.Len(t, records, 5)

	assert.Equal(t, "EMP001", employees[0].EmpID)
	assert.Equal(t, "Rajesh Kumar", employees[0].Name)
	assert.Equal(t, "40000", employees[0].BasicSalary.String())

	for _, record := range records {
		assert.Equal(t, "2025-01", record.Month)
		assert.Equal(t, 22, record.TotalWorkingDays)
		assert.LessOrEqual(t, record.PresentDays+record.LeaveDays+record.LOPDays, record.TotalWorkingDays)
	}
}

func TestEmployeeService_GetEmployee_MapsDecimalsToFloats(t *testing.T) {
	repo := &fakeEmployeeRepo{
		getByEmpIDFn: func(ctx context.Context, empID string) (employee.Employee, error) {
			emp, _ := stampCreate(employee.Employee{
				EmpID:       empID,
				Name:        "Priya Sharma",
				Department:  "HR",
				Designation: "HR Manager",
				JoinDate:    "2021-06-10",
				BasicSalary: decimal.NewFromFloat(35000),
				HRA:         decimal.NewFromFloat(14000),
				Allowance:   decimal.NewFromFloat(6000),
				PFPercent:   decimal.NewFromFloat(12),
				ESIPercent:  decimal.NewFromFloat(0.75),
				PT:          decimal.NewFromFloat(200),
			})
			return emp, nil
		},
	}
	service := NewEmployeeService(repo, &fakeAttendanceRepo{})

	// Act
	result, err := service.GetEmployee(context.Background(), "EMP002")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 35000.0, result.BasicSalary)
	assert.Equal(t, 14000.0, result.HRA)
	assert.Equal(t, 6000.0, result.Allowance)
	assert.Equal(t, 0.75, result.ESIPercent)
}

func TestEmployeeService_DeleteEmployee_PropagatesNotFound(t *testing.T) {
	repo := &fakeEmployeeRepo{
		deleteFn: func(ctx context.Context, empID string) error {
			return employee.ErrEmployeeNotFound
		},
	}
	service := NewEmployeeService(repo, &fakeAttendanceRepo{})

	// Act
	err := service.DeleteEmployee(context.Background(), "EMP404")

	// Assert
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
