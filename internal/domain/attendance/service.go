package attendance

import (
	"context"
)

// AttendanceService defines business logic for monthly attendance capture
type AttendanceService interface {
	// CreateAttendance records a month of attendance for an existing
	// employee; one record per (emp_id, month)
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// GetAttendance retrieves the record for one employee and month
	GetAttendance(ctx context.Context, empID, month string) (AttendanceResponse, error)

	// ListAttendance lists every attendance record
	ListAttendance(ctx context.Context) ([]AttendanceResponse, error)

	// ListEmployeeAttendance lists all records for one employee
	ListEmployeeAttendance(ctx context.Context, empID string) ([]AttendanceResponse, error)

	// UpdateAttendance applies a partial update, re-checking the sum
	// invariant on the merged record
	UpdateAttendance(ctx context.Context, empID, month string, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance removes the record for one employee and month
	DeleteAttendance(ctx context.Context, empID, month string) error
}
