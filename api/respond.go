package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/garnizeh/askhub/internal/qa"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("write response", slog.Any("err", err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeServiceError maps the qa error taxonomy onto HTTP statuses. Access
// denials are reported exactly like missing entities so a cross-tenant id is
// never confirmed to exist; the distinction stays in the logs.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, qa.ErrValidation):
		writeJSON(w, errorResponse{Error: err.Error()}, http.StatusBadRequest)
	case errors.Is(err, qa.ErrAccessDenied):
		logger.Warn("cross-tenant access denied", slog.Any("err", err))
		writeJSON(w, errorResponse{Error: "not found"}, http.StatusNotFound)
	case errors.Is(err, qa.ErrNotFound):
		writeJSON(w, errorResponse{Error: "not found"}, http.StatusNotFound)
	case errors.Is(err, qa.ErrForbidden):
		writeJSON(w, errorResponse{Error: "AI-generated answers are disabled"}, http.StatusForbidden)
	case errors.Is(err, qa.ErrGeneration):
		logger.Error("ai generation failed", slog.Any("err", err))
		writeJSON(w, errorResponse{Error: "answer generation failed"}, http.StatusBadGateway)
	default:
		logger.Error("internal error", slog.Any("err", err))
		writeJSON(w, errorResponse{Error: "internal error"}, http.StatusInternalServerError)
	}
}
