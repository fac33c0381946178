package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffledger/hrpay-backend-go/internal/domain/attendance"
	"github.com/staffledger/hrpay-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CreateAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
	ListEmployeeAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CreateAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CreateAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded successfully", result)
}

// ListAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	results, err := h.attendanceService.ListAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListEmployeeAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) ListEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")
	if empID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	results, err := h.attendanceService.ListEmployeeAttendance(r.Context(), empID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")
	month := chi.URLParam(r, "month")
	if empID == "" || month == "" {
		response.BadRequest(w, "Employee ID and month are required", nil)
		return
	}

	result, err := h.attendanceService.GetAttendance(r.Context(), empID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")
	month := chi.URLParam(r, "month")
	if empID == "" || month == "" {
		response.BadRequest(w, "Employee ID and month are required", nil)
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.UpdateAttendance(r.Context(), empID, month, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", result)
}

// DeleteAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")
	month := chi.URLParam(r, "month")
	if empID == "" || month == "" {
		response.BadRequest(w, "Employee ID and month are required", nil)
		return
	}

	if err := h.attendanceService.DeleteAttendance(r.Context(), empID, month); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted successfully", nil)
}
