package payroll

import (
	"github.com/shopspring/decimal"
)

// Payslip is the computed payroll breakdown for one employee and month.
// Money fields hold the final figures, already rounded to 2 decimal
// places, so the arithmetic identities hold exactly on what is emitted:
//
//	GrossSalary     = BasicSalary + HRA + Allowance
//	TotalDeductions = PFDeduction + ESIDeduction + PTDeduction
//	NetSalary       = GrossSalary - TotalDeductions
type Payslip struct {
	EmpID            string
	Name             string
	Month            string
	BasicSalary      decimal.Decimal // prorated for LOP
	HRA              decimal.Decimal // prorated for LOP
	Allowance        decimal.Decimal // prorated for LOP
	GrossSalary      decimal.Decimal
	PFDeduction      decimal.Decimal
	ESIDeduction     decimal.Decimal
	PTDeduction      decimal.Decimal
	TotalDeductions  decimal.Decimal
	NetSalary        decimal.Decimal
	PaidDays         int
	TotalWorkingDays int
}
