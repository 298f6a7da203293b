package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"clothingshop/internal/repository"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// writeServiceError maps a service error onto the HTTP surface:
// repository.ErrNotFound becomes 404 (including when raised by a nested
// existence check), validation failures become 422 with per-field detail,
// everything else becomes 500 with the error's message.
func writeServiceError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var verrs validator.ValidationErrors

	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Product not found", logger)
	case errors.As(err, &verrs):
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		WriteJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": fields,
		}, logger)
	default:
		WriteError(w, http.StatusInternalServerError, err.Error(), logger)
	}
}
