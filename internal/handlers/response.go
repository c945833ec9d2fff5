package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/product-showcase/catalog-api/internal/validation"
)

// apiResponse is the envelope every endpoint responds with. Success carries
// data (and a message for mutations); failure carries error plus either a
// human-readable message or, for validation failures, grouped details.
// Every response is stamped with the server time.
type apiResponse struct {
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Details   any    `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func writeResponse(w http.ResponseWriter, logger *slog.Logger, status int, resp apiResponse) {
	resp.Timestamp = timestamp()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// writeData responds with a bare data payload.
func writeData(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	writeResponse(w, logger, status, apiResponse{Data: data})
}

// writeDataMessage responds with a data payload plus a confirmation message.
func writeDataMessage(w http.ResponseWriter, logger *slog.Logger, status int, data any, message string) {
	writeResponse(w, logger, status, apiResponse{Data: data, Message: message})
}

// writeError responds with an error string only.
func writeError(w http.ResponseWriter, logger *slog.Logger, status int, errMsg string) {
	writeResponse(w, logger, status, apiResponse{Error: errMsg})
}

// writeErrorMessage responds with an error string and a descriptive message.
func writeErrorMessage(w http.ResponseWriter, logger *slog.Logger, status int, errMsg, message string) {
	writeResponse(w, logger, status, apiResponse{Error: errMsg, Message: message})
}

// writeValidationFailure responds 400 with the grouped validation details.
func writeValidationFailure(w http.ResponseWriter, logger *slog.Logger, errs []validation.FieldError) {
	writeResponse(w, logger, http.StatusBadRequest, apiResponse{
		Error:   "Validation failed",
		Details: validation.FormatErrors(errs),
	})
}
