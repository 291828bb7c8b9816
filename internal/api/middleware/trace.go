// Package middleware provides the HTTP middleware the router mounts around
// every handler.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/blogsmith/blogsmith-api/internal/api/shared"
)

// Trace adds a trace ID to the request context. Apply it early in the chain
// so all subsequent handlers and log entries can correlate on it.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.DebugContext(ctx, "request started",
			"trace_id", shared.GetTraceID(ctx),
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
