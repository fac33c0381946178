package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/hrpay-backend-go/internal/domain/attendance"
	"github.com/staffledger/hrpay-backend-go/internal/domain/employee"
	"github.com/staffledger/hrpay-backend-go/internal/pkg/validator"
)

type fakeAttendanceRepo struct {
	createFn             func(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error)
	getByEmpIDAndMonthFn func(ctx context.Context, empID, month string) (attendance.Attendance, error)
	listFn               func(ctx context.Context) ([]attendance.Attendance, error)
	listByEmpIDFn        func(ctx context.Context, empID string) ([]attendance.Attendance, error)
	updateFn             func(ctx context.Context, empID, month string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error)
	deleteFn             func(ctx context.Context, empID, month string) error
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	return f.createFn(ctx, newAttendance)
}

func (f *fakeAttendanceRepo) GetByEmpIDAndMonth(ctx context.Context, empID, month string) (attendance.Attendance, error) {
	return f.getByEmpIDAndMonthFn(ctx, empID, month)
}

func (f *fakeAttendanceRepo) List(ctx context.Context) ([]attendance.Attendance, error) {
	return f.listFn(ctx)
}

func (f *fakeAttendanceRepo) ListByEmpID(ctx context.Context, empID string) ([]attendance.Attendance, error) {
	return f.listByEmpIDFn(ctx, empID)
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, empID, month string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	return f.updateFn(ctx, empID, month, req)
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, empID, month string) error {
	return f.deleteFn(ctx, empID, month)
}

type fakeEmployeeRepo struct {
	getByEmpIDFn func(ctx context.Context, empID string) (employee.Employee, error)
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	panic("unexpected Create call")
}

func (f *fakeEmployeeRepo) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	return f.getByEmpIDFn(ctx, empID)
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	panic("unexpected List call")
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, empID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	panic("unexpected Update call")
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, empID string) error {
	panic("unexpected Delete call")
}

func (f *fakeEmployeeRepo) Count(ctx context.Context) (int64, error) {
	panic("unexpected Count call")
}

func employeeExists(empID string) *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		getByEmpIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			if id != empID {
				return employee.Employee{}, employee.ErrEmployeeNotFound
			}
			return employee.Employee{EmpID: id}, nil
		},
	}
}

func storedRecord() attendance.Attendance {
	return attendance.Attendance{
		ID:               "22222222-2222-2222-2222-222222222222",
		EmpID:            "EMP001",
		Month:            "2025-01",
		TotalWorkingDays: 22,
		PresentDays:      20,
		LeaveDays:        2,
		LOPDays:          0,
		CreatedAt:        time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestAttendanceService_CreateAttendance_Success(t *testing.T) {
	var captured attendance.Attendance
	attendanceRepo := &fakeAttendanceRepo{
		createFn: func(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
			captured = newAttendance
			newAttendance.ID = "rec-1"
			newAttendance.CreatedAt = time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
			return newAttendance, nil
		},
	}
	service := NewAttendanceService(attendanceRepo, employeeExists("EMP001"))

	req := attendance.CreateAttendanceRequest{
		EmpID:            "EMP001",
		Month:            "2025-01",
		TotalWorkingDays: 22,
		PresentDays:      20,
		LeaveDays:        2,
		LOPDays:          0,
	}

	// Act
	result, err := service.CreateAttendance(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "EMP001", captured.EmpID)
	assert.Equal(t, "2025-01", captured.Month)
	assert.Equal(t, 22, result.TotalWorkingDays)
	assert.Equal(t, "2025-02-01T08:00:00Z", result.CreatedAt)
}

func TestAttendanceService_CreateAttendance_UnknownEmployee(t *testing.T) {
	repoCalled := false
	attendanceRepo := &fakeAttendanceRepo{
		createFn: func(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
			repoCalled = true
			return newAttendance, nil
		},
	}
	service := NewAttendanceService(attendanceRepo, employeeExists("EMP001"))

	req := attendance.CreateAttendanceRequest{
		EmpID:            "EMP404",
		Month:            "2025-01",
		TotalWorkingDays: 22,
		PresentDays:      22,
	}

	// Act
	_, err := service.CreateAttendance(context.Background(), req)

	// Assert
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.False(t, repoCalled)
}

func TestAttendanceService_CreateAttendance_ValidationSkipsLookups(t *testing.T) {
	employeeRepo := &fakeEmployeeRepo{
		getByEmpIDFn: func(ctx context.Context, empID string) (employee.Employee, error) {
			t.Fatal("employee lookup should not run for an invalid request")
			return employee.Employee{}, nil
		},
	}
	service := NewAttendanceService(&fakeAttendanceRepo{}, employeeRepo)

	// Act
	_, err := service.CreateAttendance(context.Background(), attendance.CreateAttendanceRequest{})

	// Assert
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestAttendanceService_CreateAttendance_DuplicatePropagates(t *testing.T) {
	attendanceRepo := &fakeAttendanceRepo{
		createFn: func(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		},
	}
	service := NewAttendanceService(attendanceRepo, employeeExists("EMP001"))

	req := attendance.CreateAttendanceRequest{
		EmpID:            "EMP001",
		Month:            "2025-01",
		TotalWorkingDays: 22,
		PresentDays:      22,
	}

	// Act
	_, err := service.CreateAttendance(context.Background(), req)

	// Assert
	assert.ErrorIs(t, err, attendance.ErrAttendanceExists)
}

func TestAttendanceService_UpdateAttendance_RechecksMergedSum(t *testing.T) {
	updateCalled := false
	attendanceRepo := &fakeAttendanceRepo{
		getByEmpIDAndMonthFn: func(ctx context.Context, empID, month string) (attendance.Attendance, error) {
			return storedRecord(), nil
		},
		updateFn: func(ctx context.Context, empID, month string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
			updateCalled = true
			return attendance.Attendance{}, nil
		},
	}
	service := NewAttendanceService(attendanceRepo, employeeExists("EMP001"))

	// Stored record has 20 present + 2 leave; raising present to 21
	// pushes the merged sum to 23 against 22 working days.
	present := 21
	req := attendance.UpdateAttendanceRequest{PresentDays: &present}

	// Act
	_, err := service.UpdateAttendance(context.Background(), "EMP001", "2025-01", req)

	// Assert
	assert.ErrorIs(t, err, attendance.ErrFiguresExceedWorkingDays)
	assert.False(t, updateCalled)
}

func TestAttendanceService_UpdateAttendance_Success(t *testing.T) {
	attendanceRepo := &fakeAttendanceRepo{
		getByEmpIDAndMonthFn: func(ctx context.Context, empID, month string) (attendance.Attendance, error) {
			return storedRecord(), nil
		},
		updateFn: func(ctx context.Context, empID, month string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
			updated := req.ApplyTo(storedRecord())
			return updated, nil
		},
	}
	service := NewAttendanceService(attendanceRepo, employeeExists("EMP001"))

	present, lop := 19, 1
	req := attendance.UpdateAttendanceRequest{PresentDays: &present, LOPDays: &lop}

	// Act
	result, err := service.UpdateAttendance(context.Background(), "EMP001", "2025-01", req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 19, result.PresentDays)
	assert.Equal(t, 1, result.LOPDays)
	assert.Equal(t, 2, result.LeaveDays)
}

func TestAttendanceService_UpdateAttendance_MissingRecord(t *testing.T) {
	attendanceRepo := &fakeAttendanceRepo{
		getByEmpIDAndMonthFn: func(ctx context.Context, empID, month string) (attendance.Attendance, error) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		},
	}
	service := NewAttendanceService(attendanceRepo, employeeExists("EMP001"))

	present := 10
	req := attendance.UpdateAttendanceRequest{PresentDays: &present}

	// Act
	_, err := service.UpdateAttendance(context.Background(), "EMP001", "2024-12", req)

	// Assert
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_ListEmployeeAttendance_MapsRecords(t *testing.T) {
	attendanceRepo := &fakeAttendanceRepo{
		listByEmpIDFn: func(ctx context.Context, empID string) ([]attendance.Attendance, error) {
			record := storedRecord()
			second := storedRecord()
			second.Month = "2025-02"
			return []attendance.Attendance{record, second}, nil
		},
	}
	service := NewAttendanceService(attendanceRepo, employeeExists("EMP001"))

	// Act
	results, err := service.ListEmployeeAttendance(context.Background(), "EMP001")

	// Assert
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "2025-01", results[0].Month)
	assert.Equal(t, "2025-02", results[1].Month)
}
