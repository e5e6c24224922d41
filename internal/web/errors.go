package web

// errors.go provides unified error response handling for the web layer.
//
// Pipeline failures are logged with full technical detail server-side and
// mapped to a small set of client responses: configuration problems are
// internal errors, upstream fetch and parse problems are gateway errors.
// API routes get JSON; page routes get plain HTML errors.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/tjwelchtj/maurice-burns-estate/internal/catalog"
	"github.com/tjwelchtj/maurice-burns-estate/internal/logging"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}

// respondLoadError maps a catalog pipeline failure to an HTTP response.
func (s *Server) respondLoadError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	message := "catalog is temporarily unavailable"

	var fetchErr *catalog.FetchError
	var parseErr *catalog.ParseError
	switch {
	case errors.Is(err, catalog.ErrNotConfigured):
		status = http.StatusInternalServerError
		message = "catalog source is not configured"
	case errors.As(err, &fetchErr), errors.As(err, &parseErr):
		// keep gateway defaults
	}

	logging.FromContext(r.Context()).Error("catalog load failed",
		"path", r.URL.Path,
		"status", status,
		"error", err.Error(),
		"request_id", middleware.GetReqID(r.Context()),
	)

	if wantsJSON(r) {
		writeJSON(w, status, ErrorResponse{Error: message})
		return
	}
	http.Error(w, message, status)
}

// writeError writes a JSON error response with a plain message.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logging.FromContext(r.Context()).Warn("request rejected",
		"path", r.URL.Path,
		"status", status,
		"error", message,
	)
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeJSON encodes v as JSON with the given status.
// Encoding errors are logged since headers are already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}

// wantsJSON checks if the client prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	// API routes default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}
