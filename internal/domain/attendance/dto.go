package attendance

import (
	"github.com/staffledger/hrpay-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmpID            string `json:"emp_id"`
	Month            string `json:"month"` // YYYY-MM
	TotalWorkingDays int    `json:"total_working_days"`
	PresentDays      int    `json:"present_days"`
	LeaveDays        int    `json:"leave_days"`
	LOPDays          int    `json:"lop_days"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "emp_id is required",
		})
	}

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, valid := validator.IsValidMonth(r.Month); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if r.TotalWorkingDays < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_working_days",
			Message: "total_working_days must be at least 1",
		})
	}

	if r.PresentDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "present_days",
			Message: "present_days must not be negative",
		})
	}

	if r.LeaveDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_days",
			Message: "leave_days must not be negative",
		})
	}

	if r.LOPDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "lop_days",
			Message: "lop_days must not be negative",
		})
	}

	// Only meaningful once the individual figures are sane.
	if len(errs) == 0 && r.PresentDays+r.LeaveDays+r.LOPDays > r.TotalWorkingDays {
		errs = append(errs, validator.ValidationError{
			Field:   "total_working_days",
			Message: "present_days + leave_days + lop_days must not exceed total_working_days",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAttendanceRequest carries a partial update. emp_id and month
// identify the record and are immutable.
type UpdateAttendanceRequest struct {
	TotalWorkingDays *int `json:"total_working_days,omitempty"`
	PresentDays      *int `json:"present_days,omitempty"`
	LeaveDays        *int `json:"leave_days,omitempty"`
	LOPDays          *int `json:"lop_days,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.HasChanges() {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one field must be provided",
		})
		return errs
	}

	if r.TotalWorkingDays != nil && *r.TotalWorkingDays < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_working_days",
			Message: "total_working_days must be at least 1",
		})
	}

	if r.PresentDays != nil && *r.PresentDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "present_days",
			Message: "present_days must not be negative",
		})
	}

	if r.LeaveDays != nil && *r.LeaveDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_days",
			Message: "leave_days must not be negative",
		})
	}

	if r.LOPDays != nil && *r.LOPDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "lop_days",
			Message: "lop_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HasChanges reports whether any updatable field is set.
func (r *UpdateAttendanceRequest) HasChanges() bool {
	return r.TotalWorkingDays != nil ||
		r.PresentDays != nil ||
		r.LeaveDays != nil ||
		r.LOPDays != nil
}

// ApplyTo merges the provided fields onto an existing record, so the
// result can be re-checked against the sum invariant before writing.
func (r *UpdateAttendanceRequest) ApplyTo(a Attendance) Attendance {
	if r.TotalWorkingDays != nil {
		a.TotalWorkingDays = *r.TotalWorkingDays
	}
	if r.PresentDays != nil {
		a.PresentDays = *r.PresentDays
	}
	if r.LeaveDays != nil {
		a.LeaveDays = *r.LeaveDays
	}
	if r.LOPDays != nil {
		a.LOPDays = *r.LOPDays
	}
	return a
}

type AttendanceResponse struct {
	ID               string `json:"id"`
	EmpID            string `json:"emp_id"`
	Month            string `json:"month"`
	TotalWorkingDays int    `json:"total_working_days"`
	PresentDays      int    `json:"present_days"`
	LeaveDays        int    `json:"leave_days"`
	LOPDays          int    `json:"lop_days"`
	CreatedAt        string `json:"created_at"`
}
