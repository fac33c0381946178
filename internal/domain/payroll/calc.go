package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/staffledger/hrpay-backend-go/internal/domain/attendance"
	"github.com/staffledger/hrpay-backend-go/internal/domain/employee"
)

var hundred = decimal.NewFromInt(100)

// Compute derives the payslip for one employee and month. It is a pure
// function of its inputs and performs no I/O.
//
// Proration uses LOP days only. Paid leave does not reduce pay, and
// paid_days (present + leave) is reported on the payslip without
// entering the money math:
//
//	per_day   = component / total_working_days
//	earned    = component - per_day * lop_days
//	gross     = earned(basic) + earned(hra) + earned(allowance)
//	pf        = earned(basic) * pf_percent / 100
//	esi       = gross * esi_percent / 100
//	pt        = flat amount, never prorated
//	net       = gross - (pf + esi + pt)
//
// Each earning line is rounded to 2 decimal places as it is finalized
// and every later figure is derived from already-rounded ones, so the
// emitted numbers satisfy the payslip identities exactly.
//
// The professional tax stays at its full flat amount even for a month
// of complete LOP, which can drive net salary below zero.
func Compute(emp employee.Employee, att attendance.Attendance) (Payslip, error) {
	if att.TotalWorkingDays == 0 {
		return Payslip{}, ErrZeroWorkingDays
	}
	if att.TotalWorkingDays < 0 || att.PresentDays < 0 || att.LeaveDays < 0 || att.LOPDays < 0 {
		return Payslip{}, ErrNegativeAttendance
	}
	if att.PresentDays+att.LeaveDays+att.LOPDays > att.TotalWorkingDays {
		return Payslip{}, ErrAttendanceExceedsWorkingDays
	}
	if emp.BasicSalary.IsNegative() || emp.HRA.IsNegative() || emp.Allowance.IsNegative() ||
		emp.PFPercent.IsNegative() || emp.ESIPercent.IsNegative() || emp.PT.IsNegative() {
		return Payslip{}, ErrNegativeSalaryComponent
	}

	workingDays := decimal.NewFromInt(int64(att.TotalWorkingDays))
	lopDays := decimal.NewFromInt(int64(att.LOPDays))

	prorate := func(component decimal.Decimal) decimal.Decimal {
		perDay := component.Div(workingDays)
		return component.Sub(perDay.Mul(lopDays)).Round(2)
	}

	basic := prorate(emp.BasicSalary)
	hra := prorate(emp.HRA)
	allowance := prorate(emp.Allowance)
	gross := basic.Add(hra).Add(allowance)

	pf := basic.Mul(emp.PFPercent).Div(hundred).Round(2)
	esi := gross.Mul(emp.ESIPercent).Div(hundred).Round(2)
	pt := emp.PT.Round(2)
	totalDeductions := pf.Add(esi).Add(pt)

	return Payslip{
		EmpID:            emp.EmpID,
		Name:             emp.Name,
		Month:            att.Month,
		BasicSalary:      basic,
		HRA:              hra,
		Allowance:        allowance,
		GrossSalary:      gross,
		PFDeduction:      pf,
		ESIDeduction:     esi,
		PTDeduction:      pt,
		TotalDeductions:  totalDeductions,
		NetSalary:        gross.Sub(totalDeductions),
		PaidDays:         att.PresentDays + att.LeaveDays,
		TotalWorkingDays: att.TotalWorkingDays,
	}, nil
}
