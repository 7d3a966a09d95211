package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/port"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/auth"
)

// RouterConfig wires the HTTP surface to the application layer.
type RouterConfig struct {
	CheckURL   URLCheckService
	CheckHash  HashCheckService
	Statistics StatisticsService
	Blacklist  BlacklistService

	// JWT may be nil; bearer tokens are then rejected and only anonymous
	// checks are served.
	JWT *auth.JWTService

	// Metrics is mounted on /metrics when set.
	Metrics http.Handler

	Readiness map[string]port.Pinger
	Logger    *slog.Logger

	// RateLimit is requests per second per client on the check routes; zero disables it.
	RateLimit int
	RateBurst int
}

// NewRouter builds the chi router for the reputation service.
func NewRouter(cfg RouterConfig) http.Handler {
	health := NewHealthHandler(cfg.Readiness, cfg.Logger)
	checks := NewCheckHandler(cfg.CheckURL, cfg.CheckHash, cfg.Logger)
	stats := NewStatisticsHandler(cfg.Statistics, cfg.Logger)
	blacklist := NewBlacklistHandler(cfg.Blacklist, cfg.Logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(cfg.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/", health.Root)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(OptionalAuth(cfg.JWT))

		r.Group(func(r chi.Router) {
			if cfg.RateLimit > 0 {
				r.Use(RateLimitMiddleware(NewRateLimiter(cfg.RateLimit, cfg.RateBurst)))
			}
			r.Post("/check/url", checks.CheckURL)
			r.Post("/check/apk", checks.CheckAPK)
		})

		r.With(RequireAuth).Get("/statistics", stats.Get)

		r.Route("/admin/blacklist", func(r chi.Router) {
			r.Use(RequireRole(auth.RoleAdmin))
			blacklist.Routes(r)
		})
	})

	return r
}
