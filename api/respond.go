package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/garnizeh/careers/internal/careers"
	"github.com/garnizeh/careers/internal/form"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError maps service and validation errors to status codes. Store
// failures never leak their cause to the client.
func writeError(w http.ResponseWriter, err error) {
	var ve *form.ValidationError
	var se *careers.StoreError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, errorResponse{Error: "validation failed", Fields: ve.Fields}, http.StatusBadRequest)
	case errors.Is(err, careers.ErrNotFound):
		writeJSON(w, errorResponse{Error: "not found"}, http.StatusNotFound)
	case errors.Is(err, careers.ErrInvalidStatus), errors.Is(err, careers.ErrInvalidDate):
		writeJSON(w, errorResponse{Error: err.Error()}, http.StatusBadRequest)
	case errors.As(err, &se):
		writeJSON(w, errorResponse{Error: "internal error"}, http.StatusInternalServerError)
	default:
		logger.Error("unhandled error", slog.Any("err", err))
		writeJSON(w, errorResponse{Error: "internal error"}, http.StatusInternalServerError)
	}
}

type successResponse struct {
	Success bool `json:"success"`
}
