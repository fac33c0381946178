// Package pdfgen renders payslips as downloadable PDF documents.
package pdfgen

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/staffledger/hrpay-backend-go/internal/domain/payroll"
)

// Payslip writes an A4 payslip for the computed breakdown to w.
func Payslip(w io.Writer, slip payroll.PayslipResponse) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Payslip - %s", slip.Month))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (%s)", slip.Name, slip.EmpID))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Paid days: %d of %d working days", slip.PaidDays, slip.TotalWorkingDays))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	line(pdf, "Basic Salary", slip.BasicSalary)
	line(pdf, "HRA", slip.HRA)
	line(pdf, "Other Allowance", slip.Allowance)
	pdf.SetFont("Helvetica", "B", 11)
	line(pdf, "Gross Salary", slip.GrossSalary)
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	line(pdf, "Provident Fund", slip.PFDeduction)
	line(pdf, "ESI", slip.ESIDeduction)
	line(pdf, "Professional Tax", slip.PTDeduction)
	pdf.SetFont("Helvetica", "B", 11)
	line(pdf, "Total Deductions", slip.TotalDeductions)
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 13)
	line(pdf, "Net Salary", slip.NetSalary)

	return pdf.Output(w)
}

func line(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.CellFormat(120, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, fmt.Sprintf("%.2f", amount), "", 0, "R", false, 0, "")
	pdf.Ln(7)
}
