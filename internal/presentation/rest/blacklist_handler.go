package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
)

// BlacklistService manages deny-list entries.
type BlacklistService interface {
	Add(ctx context.Context, req dto.AddBlacklistEntryRequest) (dto.BlacklistEntryResponse, error)
	Remove(ctx context.Context, target string) error
	List(ctx context.Context, limit, offset int) (dto.BlacklistPage, error)
}

// BlacklistHandler serves the administrative deny-list endpoints.
type BlacklistHandler struct {
	blacklist BlacklistService
	logger    *slog.Logger
}

// NewBlacklistHandler creates a new BlacklistHandler.
func NewBlacklistHandler(blacklist BlacklistService, logger *slog.Logger) *BlacklistHandler {
	return &BlacklistHandler{blacklist: blacklist, logger: logger}
}

// Routes mounts the handler on r.
func (h *BlacklistHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Delete("/{target}", h.Remove)
}

// List handles GET /admin/blacklist?limit=N&offset=M.
func (h *BlacklistHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	page, err := h.blacklist.List(r.Context(), limit, offset)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Add handles POST /admin/blacklist.
func (h *BlacklistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBlacklistEntryRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.blacklist.Add(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// Remove handles DELETE /admin/blacklist/{target}.
func (h *BlacklistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	target, err := url.PathUnescape(chi.URLParam(r, "target"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid target")
		return
	}

	if err := h.blacklist.Remove(r.Context(), target); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BlacklistHandler) fail(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("blacklist operation failed", "error", err)
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
