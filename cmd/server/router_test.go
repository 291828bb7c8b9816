package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogsmith/blogsmith-api/internal/api"
	"github.com/blogsmith/blogsmith-api/internal/domain"
	"github.com/blogsmith/blogsmith-api/internal/service"
)

type stubContentService struct {
	outcome service.Outcome
}

func (s *stubContentService) GenerateContent(_ context.Context, _ domain.BlogRequest) service.Outcome {
	return s.outcome
}

func newTestRouter(outcome service.Outcome) http.Handler {
	handler := api.NewContentHandler(
		&stubContentService{outcome: outcome},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return newRouter(handler)
}

func TestRouterGenerateEndToEnd(t *testing.T) {
	router := newTestRouter(service.Outcome{Blog: "Generated prose.", Persisted: true})

	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(`{"blogTopic":"rust ownership","level":"Advanced"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var body api.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Generated prose.", body.Blog)
	assert.Equal(t, "Blog content successfully generated and uploaded.", body.Message)
}

func TestRouterValidationErrorKeepsCORSHeaders(t *testing.T) {
	router := newTestRouter(service.Outcome{})

	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(`{"blogTopic":""}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Blog topic is required", body["error"])
	assert.Equal(t, false, body["success"])
}

func TestRouterPreflight(t *testing.T) {
	router := newTestRouter(service.Outcome{})

	req := httptest.NewRequest(http.MethodOptions, "/api/generate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(service.Outcome{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
