package response

import (
	"errors"
	"net/http"

	"github.com/staffledger/hrpay-backend-go/internal/domain/assistant"
	"github.com/staffledger/hrpay-backend-go/internal/domain/attendance"
	"github.com/staffledger/hrpay-backend-go/internal/domain/employee"
	"github.com/staffledger/hrpay-backend-go/internal/domain/payroll"
	"github.com/staffledger/hrpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmpIDExists):
		Conflict(w, "Employee ID already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance already exists for this employee and month")
	case errors.Is(err, attendance.ErrFiguresExceedWorkingDays):
		BadRequest(w, err.Error(), nil)

	// Payroll computation errors
	case errors.Is(err, payroll.ErrZeroWorkingDays),
		errors.Is(err, payroll.ErrNegativeAttendance),
		errors.Is(err, payroll.ErrAttendanceExceedsWorkingDays),
		errors.Is(err, payroll.ErrNegativeSalaryComponent):
		BadRequest(w, err.Error(), nil)

	// Assistant domain errors
	case errors.Is(err, assistant.ErrUnsupportedRequestType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, assistant.ErrUpstreamUnavailable):
		ServiceUnavailable(w, "Text generation backend is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
