package payroll

import (
	"context"

	"github.com/staffledger/hrpay-backend-go/internal/domain/attendance"
	"github.com/staffledger/hrpay-backend-go/internal/domain/employee"
	"github.com/staffledger/hrpay-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

// NewPayrollService wires payslip computation over the employee and
// attendance stores. Payslips are derived on demand and never stored.
func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, empID, month string) (payroll.PayslipResponse, error) {
	emp, err := s.employeeRepo.GetByEmpID(ctx, empID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	att, err := s.attendanceRepo.GetByEmpIDAndMonth(ctx, empID, month)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	slip, err := payroll.Compute(emp, att)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return mapToPayslipResponse(slip), nil
}

func mapToPayslipResponse(slip payroll.Payslip) payroll.PayslipResponse {
	return payroll.PayslipResponse{
		EmpID:            slip.EmpID,
		Name:             slip.Name,
		Month:            slip.Month,
		BasicSalary:      slip.BasicSalary.InexactFloat64(),
		HRA:              slip.HRA.InexactFloat64(),
		Allowance:        slip.Allowance.InexactFloat64(),
		GrossSalary:      slip.GrossSalary.InexactFloat64(),
		PFDeduction:      slip.PFDeduction.InexactFloat64(),
		ESIDeduction:     slip.ESIDeduction.InexactFloat64(),
		PTDeduction:      slip.PTDeduction.InexactFloat64(),
		TotalDeductions:  slip.TotalDeductions.InexactFloat64(),
		NetSalary:        slip.NetSalary.InexactFloat64(),
		PaidDays:         slip.PaidDays,
		TotalWorkingDays: slip.TotalWorkingDays,
	}
}
