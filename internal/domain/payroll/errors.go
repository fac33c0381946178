package payroll

import "errors"

var (
	ErrZeroWorkingDays              = errors.New("total working days must be greater than zero")
	ErrNegativeAttendance           = errors.New("attendance figures must not be negative")
	ErrAttendanceExceedsWorkingDays = errors.New("present, leave and lop days exceed total working days")
	ErrNegativeSalaryComponent      = errors.New("salary components and deduction rates must not be negative")
)
