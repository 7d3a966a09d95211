package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/auth"
)

// URLCheckService scores URLs.
type URLCheckService interface {
	Execute(ctx context.Context, req dto.CheckURLRequest) (dto.ScoreResponse, error)
}

// HashCheckService checks application package hashes.
type HashCheckService interface {
	Execute(ctx context.Context, req dto.CheckHashRequest) (dto.ScoreResponse, error)
}

// CheckHandler serves the public check endpoints.
type CheckHandler struct {
	urls   URLCheckService
	hashes HashCheckService
	logger *slog.Logger
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(urls URLCheckService, hashes HashCheckService, logger *slog.Logger) *CheckHandler {
	return &CheckHandler{urls: urls, hashes: hashes, logger: logger}
}

// The pointer fields tell a missing key apart from an empty string: the
// former is a malformed request, the latter a check with an invalid verdict.
type checkURLBody struct {
	URL *string `json:"url"`
}

type checkHashBody struct {
	Hash *string `json:"hash"`
}

// CheckURL handles POST /check/url.
func (h *CheckHandler) CheckURL(w http.ResponseWriter, r *http.Request) {
	var body checkURLBody
	if err := readJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.URL == nil {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	resp, err := h.urls.Execute(r.Context(), dto.CheckURLRequest{
		URL:         *body.URL,
		RequesterID: auth.RequesterID(r.Context()),
	})
	if err != nil {
		h.logger.Error("url check failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// CheckAPK handles POST /check/apk.
func (h *CheckHandler) CheckAPK(w http.ResponseWriter, r *http.Request) {
	var body checkHashBody
	if err := readJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.Hash == nil {
		writeError(w, http.StatusBadRequest, "hash is required")
		return
	}

	resp, err := h.hashes.Execute(r.Context(), dto.CheckHashRequest{
		Hash:        *body.Hash,
		RequesterID: auth.RequesterID(r.Context()),
	})
	if err != nil {
		h.logger.Error("hash check failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
