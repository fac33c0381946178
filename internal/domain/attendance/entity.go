package attendance

import (
	"time"
)

// Attendance holds the monthly totals for one employee. There is at most
// one record per (emp_id, month).
type Attendance struct {
	ID               string
	EmpID            string
	Month            string // YYYY-MM
	TotalWorkingDays int
	PresentDays      int
	LeaveDays        int
	LOPDays          int
	CreatedAt        time.Time
}
