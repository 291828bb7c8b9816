package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name   string
		status int
		data   interface{}
	}{
		{
			name:   "successful response",
			status: http.StatusOK,
			data:   map[string]interface{}{"blog": "text", "message": "ok"},
		},
		{
			name:   "nil data",
			status: http.StatusOK,
			data:   nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Blog topic is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Blog topic is required", body["error"])
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body, "details")
}

func TestRespondWithInternalError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	w := httptest.NewRecorder()

	RespondWithInternalError(w, req, errors.New("wiring snapped"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error)
	assert.Equal(t, "wiring snapped", body.Details)
	assert.False(t, body.Success)
}

func TestTraceIDRoundTrip(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)

	ctx := SetTraceID(req.Context())
	traceID := GetTraceID(ctx)

	assert.NotEmpty(t, traceID)
	assert.Empty(t, GetTraceID(req.Context()))
}
