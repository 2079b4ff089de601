package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/postforge/postforge-api/internal/api/shared"
	"github.com/postforge/postforge-api/internal/domain"
	"github.com/postforge/postforge-api/internal/pipeline"
)

// ndjsonContentType is the media type of the incremental proposal stream.
const ndjsonContentType = "application/x-ndjson"

// GenerationRunner runs a full post generation request and streams its
// lifecycle events.
type GenerationRunner interface {
	Run(ctx context.Context, req domain.GenerationRequest) <-chan pipeline.StreamEvent
}

// PostHandler handles post proposal HTTP requests.
type PostHandler struct {
	runner GenerationRunner
	logger *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(runner GenerationRunner, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		runner: runner,
		logger: logger.With("component", "post_handler"),
	}
}

// GeneratePosts handles POST /api/generate-posts requests. The response is an
// NDJSON stream: each generation lifecycle event is written as one JSON line
// and flushed as soon as it is available.
func (h *PostHandler) GeneratePosts(w http.ResponseWriter, r *http.Request) {
	var req GeneratePostsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.ErrorContext(r.Context(), "response writer does not support streaming")
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", ndjsonContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	for event := range h.runner.Run(r.Context(), req.ToDomain()) {
		if err := enc.Encode(event); err != nil {
			// The client went away; the pipeline drains via the request context.
			h.logger.WarnContext(r.Context(), "failed to write stream event",
				"error", err,
				"status", string(event.Status))
			return
		}
		flusher.Flush()
	}
}

// GetPost handles GET /api/posts/{id} requests. Proposals are streamed to the
// caller and not persisted, so every lookup is a miss.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	shared.RespondWithError(w, r, MapErrorToStatusCode(ErrPostNotFound), GetSafeErrorMessage(ErrPostNotFound))
}
