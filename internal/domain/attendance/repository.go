package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for monthly attendance
// records. Records are addressed by the (emp_id, month) pair.
type AttendanceRepository interface {
	// Create inserts a new record; the storage layer rejects duplicates
	// of (emp_id, month) atomically
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)

	// GetByEmpIDAndMonth retrieves the record for one employee and month
	GetByEmpIDAndMonth(ctx context.Context, empID, month string) (Attendance, error)

	// List retrieves all attendance records
	List(ctx context.Context) ([]Attendance, error)

	// ListByEmpID retrieves all records for one employee
	ListByEmpID(ctx context.Context, empID string) ([]Attendance, error)

	// Update applies a partial update and returns the updated record
	Update(ctx context.Context, empID, month string, req UpdateAttendanceRequest) (Attendance, error)

	// Delete removes the record for one employee and month
	Delete(ctx context.Context, empID, month string) error
}
