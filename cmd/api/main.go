package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hr-attendance-go/internal/handler/http"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/email"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/hr-attendance-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hr-attendance-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hr-attendance-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hr-attendance-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hr-attendance-go/internal/service/employee"
	holidayService "github.com/cmlabs-hris/hr-attendance-go/internal/service/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/service/leave"
	reportService "github.com/cmlabs-hris/hr-attendance-go/internal/service/report"
)

func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.App.LogLevel),
	})).With(slog.String("app", "hr-attendance"), slog.String("env", cfg.App.Env)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	loc := cfg.Location()
	transactor := postgresql.NewTransactor(db)

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		slog.Error("Failed to initialize email service", "error", err)
		os.Exit(1)
	}

	employeeSvc := employeeService.NewEmployeeService(transactor, employeeRepo, userRepo, loc)
	attendanceSvc := attendanceService.NewAttendanceService(transactor, attendanceRepo, employeeRepo, holidayRepo, employeeSvc, loc)
	authSvc := serviceAuth.NewAuthService(transactor, userRepo, employeeRepo, JWTService, JWTRepository, loc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, loc)
	leaveSvc := leave.NewLeaveService(transactor, leaveRequestRepo, attendanceRepo, employeeRepo, employeeSvc, emailService)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, holidayRepo, loc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeSvc, attendanceSvc)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Me:         appHTTP.NewMeHandler(employeeSvc, attendanceSvc),
	}

	router := appHTTP.NewRouter(JWTService, handlers, appHTTP.RouterOptions{
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		GoogleLogin:    cfg.OAuth2Google.Enabled(),
		Env:            cfg.App.Env,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	slog.Info("Server stopped")
}
