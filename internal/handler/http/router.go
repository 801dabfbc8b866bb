package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	frontendURL string,
	attendanceHandler AttendanceHandler,
	driverHandler DriverHandler,
	companyHandler CompanyHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Get("/summary", attendanceHandler.GetSummary)
			r.Get("/calendar", attendanceHandler.GetCalendar)
			r.Get("/daily/{date}", attendanceHandler.GetDailyDetail)
			r.Get("/export", attendanceHandler.Export)
		})

		r.Route("/drivers", func(r chi.Router) {
			r.Get("/", driverHandler.List)
			r.Post("/", driverHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", driverHandler.Get)
				r.Put("/", driverHandler.Update)
				r.Delete("/", driverHandler.Delete)
				r.Post("/checkin", driverHandler.CheckIn)
				r.Get("/history", driverHandler.GetHistory)
			})
		})

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", companyHandler.List)
			r.Post("/", companyHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", companyHandler.Get)
				r.Put("/", companyHandler.Update)
				r.Delete("/", companyHandler.Delete)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/dashboard", dashboardHandler.GetDashboard)
			r.Post("/archive", dashboardHandler.Archive)
		})
	})

	return r
}
