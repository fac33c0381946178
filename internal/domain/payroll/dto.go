package payroll

// PayslipResponse is the wire form of a computed payslip. The salary
// fields carry the rounded figures from the Payslip entity.
type PayslipResponse struct {
	EmpID            string  `json:"emp_id"`
	Name             string  `json:"name"`
	Month            string  `json:"month"`
	BasicSalary      float64 `json:"basic_salary"`
	HRA              float64 `json:"hra"`
	Allowance        float64 `json:"allowance"`
	GrossSalary      float64 `json:"gross_salary"`
	PFDeduction      float64 `json:"pf_deduction"`
	ESIDeduction     float64 `json:"esi_deduction"`
	PTDeduction      float64 `json:"pt_deduction"`
	TotalDeductions  float64 `json:"total_deductions"`
	NetSalary        float64 `json:"net_salary"`
	PaidDays         int     `json:"paid_days"`
	TotalWorkingDays int     `json:"total_working_days"`
}
