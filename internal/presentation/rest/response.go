package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/usecase"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
)

const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body is empty")

// readJSON reads and unmarshals a JSON request body into the provided value.
func readJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return errEmptyBody
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// writeJSON marshals the value as JSON and writes it to the response.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(w, statusCode, map[string]string{"error": msg})
}

// errorStatus maps application errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidEntry):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrUserRequired):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
