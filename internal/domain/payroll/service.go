package payroll

import (
	"context"
)

// PayrollService defines business logic for payslip computation
type PayrollService interface {
	// GetPayslip loads the employee and attendance records for
	// (emp_id, month) and computes the payslip
	GetPayslip(ctx context.Context, empID, month string) (PayslipResponse, error)
}
