package attendance

import (
	"context"
	"time"

	"github.com/staffledger/hrpay-backend-go/internal/domain/attendance"
	"github.com/staffledger/hrpay-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

// NewAttendanceService wires the attendance business logic. The
// employee repository backs the existence check on create.
func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// CreateAttendance implements attendance.AttendanceService. The
// referenced employee must exist; duplicates of (emp_id, month) are
// rejected by the storage layer.
func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmpID(ctx, req.EmpID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	newAttendance := attendance.Attendance{
		EmpID:            req.EmpID,
		Month:            req.Month,
		TotalWorkingDays: req.TotalWorkingDays,
		PresentDays:      req.PresentDays,
		LeaveDays:        req.LeaveDays,
		LOPDays:          req.LOPDays,
	}

	created, err := s.attendanceRepo.Create(ctx, newAttendance)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToAttendanceResponse(created), nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, empID, month string) (attendance.AttendanceResponse, error) {
	record, err := s.attendanceRepo.GetByEmpIDAndMonth(ctx, empID, month)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToAttendanceResponse(record), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapToAttendanceResponse(record))
	}

	return responses, nil
}

// ListEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListEmployeeAttendance(ctx context.Context, empID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByEmpID(ctx, empID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapToAttendanceResponse(record))
	}

	return responses, nil
}

// UpdateAttendance implements attendance.AttendanceService. The sum
// invariant is re-checked on the merged record before writing, since a
// partial update can push the figures past the working days.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, empID, month string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	current, err := s.attendanceRepo.GetByEmpIDAndMonth(ctx, empID, month)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	merged := req.ApplyTo(current)
	if merged.PresentDays+merged.LeaveDays+merged.LOPDays > merged.TotalWorkingDays {
		return attendance.AttendanceResponse{}, attendance.ErrFiguresExceedWorkingDays
	}

	updated, err := s.attendanceRepo.Update(ctx, empID, month, req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToAttendanceResponse(updated), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, empID, month string) error {
	return s.attendanceRepo.Delete(ctx, empID, month)
}

func mapToAttendanceResponse(record attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:               record.ID,
		EmpID:            record.EmpID,
		Month:            record.Month,
		TotalWorkingDays: record.TotalWorkingDays,
		PresentDays:      record.PresentDays,
		LeaveDays:        record.LeaveDays,
		LOPDays:          record.LOPDays,
		CreatedAt:        record.CreatedAt.UTC().Format(time.RFC3339),
	}
}
