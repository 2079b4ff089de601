package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postforge/postforge-api/internal/domain"
	"github.com/postforge/postforge-api/internal/pipeline"
)

// stubRunner replays a fixed event sequence and records the request it saw.
type stubRunner struct {
	events []pipeline.StreamEvent
	gotReq domain.GenerationRequest
}

func (s *stubRunner) Run(_ context.Context, req domain.GenerationRequest) <-chan pipeline.StreamEvent {
	s.gotReq = req
	out := make(chan pipeline.StreamEvent, len(s.events))
	for _, ev := range s.events {
		out <- ev
	}
	close(out)
	return out
}

func testHandlerLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validGenerateBody() string {
	return `{
		"company_profile": {
			"name": "Acme Coffee",
			"description": "Specialty coffee roaster",
			"values": ["quality"],
			"target_audience": ["coffee enthusiasts"],
			"tone_of_voice": "warm",
			"industry": "food and beverage"
		},
		"brand_persona": {
			"name": "Barista Bea",
			"appearance": "cheerful barista with round glasses",
			"personality": "enthusiastic",
			"backstory": "former chemist",
			"values": ["craft"]
		},
		"num_proposals": 10
	}`
}

func decodeStream(t *testing.T, body *bytes.Buffer) []pipeline.StreamEvent {
	t.Helper()
	var events []pipeline.StreamEvent
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		var ev pipeline.StreamEvent
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &ev))
		events = append(events, ev)
	}
	return events
}

func TestGeneratePosts(t *testing.T) {
	t.Run("streams events as NDJSON lines", func(t *testing.T) {
		proposal := domain.NewPostProposal(
			domain.PostContent{Text: "A post", Hashtags: []string{"#x"}},
			nil,
		)
		runner := &stubRunner{events: []pipeline.StreamEvent{
			{Status: pipeline.EventStarted, Message: "Starting post generation process"},
			{Status: pipeline.EventInProgress, Post: proposal},
			{Status: pipeline.EventCompleted, Count: 1, Message: "Generated 1 post proposals"},
		}}
		handler := NewPostHandler(runner, testHandlerLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/generate-posts", strings.NewReader(validGenerateBody()))
		rec := httptest.NewRecorder()
		handler.GeneratePosts(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ndjsonContentType, rec.Header().Get("Content-Type"))

		events := decodeStream(t, rec.Body)
		require.Len(t, events, 3)
		assert.Equal(t, pipeline.EventStarted, events[0].Status)
		assert.Equal(t, pipeline.EventInProgress, events[1].Status)
		require.NotNil(t, events[1].Post)
		assert.Equal(t, "A post", events[1].Post.Content.Text)
		assert.Equal(t, pipeline.EventCompleted, events[2].Status)
		assert.Equal(t, 1, events[2].Count)
	})

	t.Run("maps the DTO onto the domain request", func(t *testing.T) {
		runner := &stubRunner{events: []pipeline.StreamEvent{
			{Status: pipeline.EventCompleted, Count: 0},
		}}
		handler := NewPostHandler(runner, testHandlerLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/generate-posts", strings.NewReader(validGenerateBody()))
		handler.GeneratePosts(httptest.NewRecorder(), req)

		assert.Equal(t, "Acme Coffee", runner.gotReq.Profile.Name)
		assert.Equal(t, "Barista Bea", runner.gotReq.Persona.Name)
		assert.Equal(t, 10, runner.gotReq.Count)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		handler := NewPostHandler(&stubRunner{}, testHandlerLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/generate-posts", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		handler.GeneratePosts(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a request failing validation", func(t *testing.T) {
		handler := NewPostHandler(&stubRunner{}, testHandlerLogger())

		body := strings.Replace(validGenerateBody(), `"name": "Acme Coffee",`, `"name": "",`, 1)
		req := httptest.NewRequest(http.MethodPost, "/api/generate-posts", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.GeneratePosts(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid")
	})
}

func TestGetPost(t *testing.T) {
	newRequest := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/posts/"+id, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("unknown proposal returns 404", func(t *testing.T) {
		handler := NewPostHandler(&stubRunner{}, testHandlerLogger())

		rec := httptest.NewRecorder()
		handler.GetPost(rec, newRequest(uuid.New().String()))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Post proposal not found")
	})

	t.Run("malformed ID returns 400", func(t *testing.T) {
		handler := NewPostHandler(&stubRunner{}, testHandlerLogger())

		rec := httptest.NewRecorder()
		handler.GetPost(rec, newRequest("not-a-uuid"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
