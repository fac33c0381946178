package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("attendance already recorded for this employee and month")

	// Returned when an update would make present + leave + lop exceed
	// the total working days of the merged record.
	ErrFiguresExceedWorkingDays = errors.New("present, leave and lop days must not exceed total working days")
)
