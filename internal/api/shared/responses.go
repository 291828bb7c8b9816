package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/blogsmith/blogsmith-api/internal/redact"
)

// ErrorResponse defines the standard error body. The same shape serves 400
// and 500 responses; Details is populated only for unexpected failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Success bool   `json:"success"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the standard error body with the given status code
// and caller-facing message, logging it with the request's trace ID.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.Log(r.Context(), logLevel, "sending error response",
		"status_code", status,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Error: message, Success: false})
}

// RespondWithInternalError writes the 500 error body for an unexpected
// failure. The generic message goes to the caller along with redacted error
// details for diagnostics; the full error is logged.
func RespondWithInternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "unexpected failure",
		"error", redact.Error(err),
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal server error",
		Details: redact.Error(err),
		Success: false,
	})
}
