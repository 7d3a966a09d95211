package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/auth"
)

// StatisticsService returns per-user daily counters.
type StatisticsService interface {
	Execute(ctx context.Context, req dto.GetStatisticsRequest) (dto.StatisticsResponse, error)
}

// StatisticsHandler serves the caller's own statistics.
type StatisticsHandler struct {
	stats  StatisticsService
	logger *slog.Logger
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(stats StatisticsService, logger *slog.Logger) *StatisticsHandler {
	return &StatisticsHandler{stats: stats, logger: logger}
}

// Get handles GET /statistics?days=N.
func (h *StatisticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	var days int
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = n
	}

	resp, err := h.stats.Execute(r.Context(), dto.GetStatisticsRequest{
		UserID: auth.RequesterID(r.Context()),
		Days:   days,
	})
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("statistics lookup failed", "error", err)
			writeError(w, status, "internal error")
			return
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
