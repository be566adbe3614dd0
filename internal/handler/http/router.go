package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/gta-labs/gta-backend-go/internal/config"
	"github.com/gta-labs/gta-backend-go/internal/handler/http/middleware"
	"github.com/gta-labs/gta-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	WorkCycle    WorkCycleHandler
	TimeEntry    TimeEntryHandler
	Overtime     OvertimeHandler
	SpecialHour  SpecialHourHandler
	Notification NotificationHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/work-cycles", func(r chi.Router) {
				r.Get("/", h.WorkCycle.List)
				r.Get("/{id}", h.WorkCycle.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.WorkCycle.Create)
					r.Put("/{id}", h.WorkCycle.Update)
					r.Delete("/{id}", h.WorkCycle.Delete)
					r.Put("/{id}/schedule", h.WorkCycle.UpsertSchedule)
				})
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.Post("/{employeeID}/clock-in", h.TimeEntry.ClockIn)
				r.Post("/{employeeID}/clock-out", h.TimeEntry.ClockOut)
				r.Get("/my", h.TimeEntry.ListMy)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.TimeEntry.List)
					r.Get("/validate", h.TimeEntry.Validate)
					r.Get("/{id}", h.TimeEntry.Get)
				})
			})

			r.Route("/overtimes", func(r chi.Router) {
				r.Get("/my", h.Overtime.ListMy)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.Overtime.List)
					r.Get("/{id}", h.Overtime.Get)
					r.Post("/{id}/approve", h.Overtime.Approve)
					r.Post("/{id}/reject", h.Overtime.Reject)
				})
			})

			r.Route("/special-hours", func(r chi.Router) {
				r.Get("/my", h.SpecialHour.ListMy)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.SpecialHour.List)
					r.Get("/{id}", h.SpecialHour.Get)
					r.Post("/{id}/approve", h.SpecialHour.Approve)
					r.Post("/{id}/reject", h.SpecialHour.Reject)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Post("/read", h.Notification.MarkRead)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	return r
}
