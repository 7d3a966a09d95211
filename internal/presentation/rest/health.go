package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/port"
)

const (
	serviceName  = "PhishGuard Reputation Engine"
	probeTimeout = 2 * time.Second
)

// HealthHandler provides HTTP health check endpoints for the reputation service.
type HealthHandler struct {
	logger    *slog.Logger
	checks    map[string]port.Pinger
	startTime time.Time
}

// NewHealthHandler creates a new health check handler. Each entry in checks is
// pinged by the readiness probe.
func NewHealthHandler(checks map[string]port.Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		logger:    logger,
		checks:    checks,
		startTime: time.Now(),
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime,omitempty"`
}

// ReadinessResponse is the JSON response for readiness checks.
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "running", Service: serviceName})
}

// Healthz handles liveness probe requests.
func (h *HealthHandler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Readyz handles readiness probe requests.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	resp := ReadinessResponse{Status: "ready", Service: serviceName, Checks: make(map[string]string, len(h.checks))}
	code := http.StatusOK
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			h.logger.Warn("readiness check failed", "check", name, "error", err)
			resp.Checks[name] = "unavailable"
			resp.Status = "not ready"
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	writeJSON(w, code, resp)
}
