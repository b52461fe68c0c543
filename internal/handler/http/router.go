package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/officehub/insights-gateway-go/internal/config"
	"github.com/officehub/insights-gateway-go/internal/handler/http/middleware"
	"github.com/officehub/insights-gateway-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	dashboardHandler DashboardHandler,
	attendanceHandler AttendanceHandler,
	rankingHandler RankingHandler,
	taskHandler TaskHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "insights-gateway"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Everything this gateway serves requires a platform session
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/dashboard", dashboardHandler.GetDashboard)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/summary", attendanceHandler.GetSummary)
				r.Get("/weekly", attendanceHandler.GetWeeklySummary)
			})

			r.Route("/rankings", func(r chi.Router) {
				r.Get("/top", rankingHandler.GetLeaderboard)
				r.Get("/best-department", rankingHandler.GetBestDepartment)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/summary", taskHandler.GetSummary)
			})
		})
	})
	return r
}
