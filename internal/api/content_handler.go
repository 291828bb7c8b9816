// Package api contains the HTTP handlers and request/response types that
// make up the service's external contract.
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/blogsmith/blogsmith-api/internal/api/shared"
	"github.com/blogsmith/blogsmith-api/internal/domain"
	"github.com/blogsmith/blogsmith-api/internal/service"
)

// ContentHandler handles content generation HTTP requests.
type ContentHandler struct {
	service service.ContentGenerator
	logger  *slog.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(svc service.ContentGenerator, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		service: svc,
		logger:  logger,
	}
}

// GenerateBlog handles POST /api/generate requests. Validation failures
// produce 400, panics produce 500; every other path produces 200 with the
// persistence outcome folded into the message string only.
func (h *ContentHandler) GenerateBlog(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			shared.RespondWithInternalError(w, r, fmt.Errorf("panic in generate handler: %v", rec))
		}
	}()

	req, err := decodeGenerateRequest(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	blogReq, err := domain.NewBlogRequest(req.BlogTopic, req.Level, req.Context)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTopic) {
			shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "generation request accepted",
		"trace_id", shared.GetTraceID(r.Context()),
		"topic", blogReq.Topic,
		"level", blogReq.Level)

	outcome := h.service.GenerateContent(r.Context(), blogReq)

	message := msgUploadSucceeded
	if !outcome.Persisted {
		message = msgUploadFailed
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{
		Blog:    outcome.Blog,
		Message: message,
	})
}
