package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Holiday    HolidayHandler
	Leave      LeaveHandler
	Report     ReportHandler
	Dashboard  DashboardHandler
	Me         MeHandler
}

type RouterOptions struct {
	AllowedOrigins []string
	// GoogleLogin mounts the Google OAuth routes.
	GoogleLogin bool
	Env         string
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
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

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			if opts.GoogleLogin {
				r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
				r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
			}
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.With(middleware.RequirePermission(user.PermissionDashboardHR)).Get("/dashboard", h.Dashboard.GetDashboard)

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/", h.Employee.ListEmployees)
				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/{id}", h.Employee.GetEmployee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/", h.Attendance.ListSummaries)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/{employeeID}", h.Attendance.GetEmployeeAttendance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceManage))
					r.Get("/{employeeID}/days/{date}", h.Attendance.GetDay)
					r.Put("/{employeeID}/days/{date}", h.Attendance.UpdateDay)
					r.Delete("/records/{id}", h.Attendance.DeleteRecord)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/", h.Holiday.ListHolidays)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionHolidayManage))
					r.Post("/", h.Holiday.CreateHoliday)
					r.Delete("/{id}", h.Holiday.DeleteHoliday)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveViewAll))
					r.Get("/", h.Leave.ListRequests)
					r.Get("/pending", h.Leave.ListPendingRequests)
					r.Get("/{id}", h.Leave.GetRequest)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.Post("/", h.Leave.CreateRequest)
					r.Post("/{id}/approve", h.Leave.ApproveRequest)
					r.Post("/{id}/reject", h.Leave.RejectRequest)
					r.Delete("/{id}", h.Leave.DeleteRequest)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportsExport))
				r.Get("/attendance", h.Report.PreviewAttendance)
				r.Get("/attendance/export", h.Report.ExportAttendance)
			})

			r.Route("/me", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionViewOwnProfile)).Get("/profile", h.Me.GetProfile)
				r.With(middleware.RequirePermission(user.PermissionEditOwnProfile)).Put("/profile", h.Me.UpdateProfile)
				r.With(middleware.RequirePermission(user.PermissionDashboardOwn)).Get("/dashboard", h.Dashboard.GetMyDashboard)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).Get("/attendance", h.Me.GetAttendance)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).Get("/leave", h.Leave.GetMyRequests)
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/leave", h.Leave.ApplyMyRequest)
			})
		})
	})
	return r
}
