package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffledger/hrpay-backend-go/internal/domain/payroll"
	"github.com/staffledger/hrpay-backend-go/internal/handler/http/response"
	"github.com/staffledger/hrpay-backend-go/internal/pkg/pdfgen"
)

type PayrollHandler interface {
	GetPayslip(w http.ResponseWriter, r *http.Request)
	DownloadPayslipPDF(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// GetPayslip implements PayrollHandler
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")
	month := chi.URLParam(r, "month")
	if empID == "" || month == "" {
		response.BadRequest(w, "Employee ID and month are required", nil)
		return
	}

	result, err := h.payrollService.GetPayslip(r.Context(), empID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadPayslipPDF implements PayrollHandler. The document is rendered
// into memory first so computation errors still produce a JSON error
// body instead of a half-written file.
func (h *payrollHandlerImpl) DownloadPayslipPDF(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")
	month := chi.URLParam(r, "month")
	if empID == "" || month == "" {
		response.BadRequest(w, "Employee ID and month are required", nil)
		return
	}

	result, err := h.payrollService.GetPayslip(r.Context(), empID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := pdfgen.Payslip(&buf, result); err != nil {
		slog.Error("Failed to render payslip PDF", "emp_id", empID, "month", month, "error", err)
		response.InternalServerError(w, "Failed to render payslip PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip_%s_%s.pdf", empID, month))
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("Failed to write payslip PDF", "emp_id", empID, "month", month, "error", err)
	}
}
