package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/staffledger/hrpay-backend-go/internal/handler/http/response"
)

func NewRouter(
	logger *slog.Logger,
	corsOrigins []string,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	assistantHandler AssistantHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			response.SuccessWithMessage(w, "HR & Payroll API is running", nil)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/", employeeHandler.ListEmployees)
			r.Get("/{empID}", employeeHandler.GetEmployee)
			r.Put("/{empID}", employeeHandler.UpdateEmployee)
			r.Delete("/{empID}", employeeHandler.DeleteEmployee)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", attendanceHandler.CreateAttendance)
			r.Get("/", attendanceHandler.ListAttendance)
			r.Get("/{empID}", attendanceHandler.ListEmployeeAttendance)
			r.Get("/{empID}/{month}", attendanceHandler.GetAttendance)
			r.Put("/{empID}/{month}", attendanceHandler.UpdateAttendance)
			r.Delete("/{empID}/{month}", attendanceHandler.DeleteAttendance)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/{empID}/{month}", payrollHandler.GetPayslip)
			r.Get("/{empID}/{month}/pdf", payrollHandler.DownloadPayslipPDF)
		})

		r.Post("/assistant", assistantHandler.GenerateText)
		r.Post("/sample-data", employeeHandler.SeedSampleData)
	})

	return r
}
