package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/rosterly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/rosterly/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	holidayHandler HolidayHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "rosterly-attendance"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Everything else is admin-only
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Delete("/{id}", employeeHandler.DeleteEmployee)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.ListHolidays)
				r.Post("/", holidayHandler.CreateHoliday)
				r.Delete("/{date}", holidayHandler.DeleteHoliday)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Route("/sessions", func(r chi.Router) {
					r.Post("/", attendanceHandler.StartSession)
					r.Route("/current", func(r chi.Router) {
						r.Get("/", attendanceHandler.SessionStatus)
						r.Delete("/", attendanceHandler.CancelSession)
						r.Post("/decision", attendanceHandler.Decide)
						r.Post("/reason", attendanceHandler.Reason)
					})
				})
				r.Post("/absences", attendanceHandler.MarkMultidayAbsence)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily", reportHandler.DailyToday)
				r.Get("/date/{date}", reportHandler.DailyByDate)
				r.Get("/last-7-days", reportHandler.Last7Days)
				r.Get("/last-30-days", reportHandler.Last30Days)
				r.Get("/monthly", reportHandler.Monthly)
				r.Get("/employees/{id}", reportHandler.EmployeeReport)
			})
		})
	})
	return r
}
