package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/staffledger/hrpay-backend-go/internal/config"
	appHTTP "github.com/staffledger/hrpay-backend-go/internal/handler/http"
	"github.com/staffledger/hrpay-backend-go/internal/pkg/database"
	"github.com/staffledger/hrpay-backend-go/internal/pkg/textgen"
	"github.com/staffledger/hrpay-backend-go/internal/repository/mongodb"
	assistantService "github.com/staffledger/hrpay-backend-go/internal/service/assistant"
	attendanceService "github.com/staffledger/hrpay-backend-go/internal/service/attendance"
	employeeService "github.com/staffledger/hrpay-backend-go/internal/service/employee"
	payrollService "github.com/staffledger/hrpay-backend-go/internal/service/payroll"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLogLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	db, err := database.NewMongoDB(ctx, cfg.Mongo.URL, cfg.Mongo.Database)
	cancel()
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	ctx, cancel = context.WithTimeout(context.Background(), startupTimeout)
	err = db.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		logger.Error("Failed to create MongoDB indexes", "error", err)
		os.Exit(1)
	}

	employeeRepo := mongodb.NewEmployeeRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)

	// Without an API key the assistant runs on templates alone.
	var generator textgen.Generator
	if cfg.Assistant.APIKey != "" {
		gemini, err := textgen.NewGeminiGenerator(context.Background(), cfg.Assistant.APIKey, cfg.Assistant.Model)
		if err != nil {
			logger.Warn("Failed to initialize text generation model, assistant will use templates only", "error", err)
		} else {
			generator = gemini
			logger.Info("Text generation model enabled", "model", cfg.Assistant.Model)
		}
	}

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, attendanceRepo)
	assistantSvc := assistantService.NewAssistantService(generator, cfg.Assistant.Timeout)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	assistantHandler := appHTTP.NewAssistantHandler(assistantSvc)

	router := appHTTP.NewRouter(
		logger,
		cfg.CORS.AllowedOrigins,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		assistantHandler,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server listening", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Shutdown signal received", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced server shutdown", "error", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("Failed to close MongoDB connection", "error", err)
	}

	logger.Info("Server exited")
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
