package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogsmith/blogsmith-api/internal/api"
	apimiddleware "github.com/blogsmith/blogsmith-api/internal/api/middleware"
)

// newRouter creates and configures the application router with all routes
// and middleware.
func newRouter(contentHandler *api.ContentHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.CORS)
	r.Use(apimiddleware.Trace)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", contentHandler.GenerateBlog)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.ErrorContext(r.Context(), "failed to write health check response", "error", err)
		}
	})

	return r
}
