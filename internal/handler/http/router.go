package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
	Version     string
	// Gatherer backs /metrics. Nil leaves the endpoint out.
	Gatherer prometheus.Gatherer
}

type Handlers struct {
	Auth       AuthHandler
	Adjustment AdjustmentHandler
	Employee   EmployeeHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers, loginLimiter *middleware.IPRateLimiter) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-adjustment"),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
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

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Get("/managers", h.Auth.ListManagers)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			r.Group(func(r chi.Router) {
				if loginLimiter != nil {
					r.Use(loginLimiter.Middleware)
				}
				r.Post("/login", h.Auth.Login)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))
			r.Use(middleware.WithSession)

			r.Get("/auth/session", h.Auth.Session)
			r.Get("/dashboard", h.Dashboard.GetDashboard)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/import", h.Employee.ImportRoster)
			})

			r.Route("/adjustments", func(r chi.Router) {
				r.Get("/", h.Adjustment.List)
				r.Post("/", h.Adjustment.Create)
				r.Post("/preview", h.Adjustment.Preview)
				r.Get("/reasons", h.Adjustment.Reasons)
				r.Get("/export.xlsx", h.Adjustment.Export)
				r.Get("/{id}", h.Adjustment.Get)
			})
		})
	})
	return r
}
