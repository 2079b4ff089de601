package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postforge/postforge-api/internal/domain"
	"github.com/postforge/postforge-api/internal/generation"
	"github.com/postforge/postforge-api/internal/mocks"
)

func testRequest(count int) domain.GenerationRequest {
	return domain.GenerationRequest{
		Profile: testProfile(),
		Persona: testPersona(),
		Count:   count,
	}
}

func collectEvents(t *testing.T, ch <-chan StreamEvent) []StreamEvent {
	t.Helper()
	var events []StreamEvent
	for ev := range ch {
		events = append(events, ev)
	}
	return events
}

// routingTextGenerator answers each pipeline stage by inspecting the system
// prompt, so one mock can serve report, brief, proposal and scene calls.
func routingTextGenerator() *mocks.MockTextGenerator {
	return &mocks.MockTextGenerator{
		GenerateTextFn: func(_ context.Context, systemPrompt, _ string, _ generation.TextParams) (string, error) {
			switch {
			case strings.Contains(systemPrompt, "content strategist"):
				return "A focused content brief.", nil
			case strings.Contains(systemPrompt, "visual director"):
				return "A vivid scene.", nil
			case strings.Contains(systemPrompt, "brand hero for a company"):
				return `{"text":"A great post","hashtags":["#great"]}`, nil
			default:
				return structuredReport, nil
			}
		},
	}
}

func TestOrchestratorRun(t *testing.T) {
	t.Run("streams started, one in-progress per proposal, then completed", func(t *testing.T) {
		cfg := testConfig()
		cfg.Pipeline.MinProposals = 2
		text := routingTextGenerator()
		image := &mocks.MockImageGenerator{URL: "https://images.example.com/p.png"}
		o := NewOrchestrator(text, image, &mocks.MockSearcher{}, cfg, testLogger())

		events := collectEvents(t, o.Run(context.Background(), testRequest(2)))

		require.Len(t, events, 4)
		assert.Equal(t, EventStarted, events[0].Status)
		for _, ev := range events[1:3] {
			assert.Equal(t, EventInProgress, ev.Status)
			require.NotNil(t, ev.Post)
			assert.Equal(t, "A great post", ev.Post.Content.Text)
			require.NotNil(t, ev.Post.Image)
			assert.Equal(t, "https://images.example.com/p.png", ev.Post.Image.URL)
		}
		last := events[3]
		assert.Equal(t, EventCompleted, last.Status)
		assert.Equal(t, 2, last.Count)
		assert.Equal(t, "Generated 2 post proposals", last.Message)
	})

	t.Run("count is clamped before generation", func(t *testing.T) {
		text := routingTextGenerator()
		image := &mocks.MockImageGenerator{URL: "https://images.example.com/p.png"}
		o := NewOrchestrator(text, image, &mocks.MockSearcher{}, testConfig(), testLogger())

		events := collectEvents(t, o.Run(context.Background(), testRequest(100)))

		last := events[len(events)-1]
		assert.Equal(t, EventCompleted, last.Status)
		assert.Equal(t, 20, last.Count)

		inProgress := 0
		for _, ev := range events {
			if ev.Status == EventInProgress {
				inProgress++
			}
		}
		assert.Equal(t, 20, inProgress)
	})

	t.Run("invalid request ends the stream with an error event", func(t *testing.T) {
		o := NewOrchestrator(&mocks.MockTextGenerator{}, &mocks.MockImageGenerator{}, &mocks.MockSearcher{}, testConfig(), testLogger())

		req := testRequest(10)
		req.Profile.Name = ""
		events := collectEvents(t, o.Run(context.Background(), req))

		require.Len(t, events, 2)
		assert.Equal(t, EventStarted, events[0].Status)
		assert.Equal(t, EventError, events[1].Status)
		assert.NotEmpty(t, events[1].Error)
	})

	t.Run("fatal report failure ends the stream with an error event", func(t *testing.T) {
		text := &mocks.MockTextGenerator{Err: errors.New("provider unavailable")}
		o := NewOrchestrator(text, &mocks.MockImageGenerator{}, &mocks.MockSearcher{}, testConfig(), testLogger())

		events := collectEvents(t, o.Run(context.Background(), testRequest(10)))

		require.Len(t, events, 2)
		assert.Equal(t, EventStarted, events[0].Status)
		assert.Equal(t, EventError, events[1].Status)
		assert.Contains(t, events[1].Error, "context report generation failed")
	})

	t.Run("guardrails are applied to streamed proposals", func(t *testing.T) {
		cfg := testConfig()
		cfg.Pipeline.MinProposals = 1
		text := routingTextGenerator()
		text.GenerateTextFn = func(_ context.Context, systemPrompt, _ string, _ generation.TextParams) (string, error) {
			if strings.Contains(systemPrompt, "brand hero for a company") {
				return `{"text":"A great post","hashtags":[]}`, nil
			}
			return routingTextGenerator().GenerateTextFn(context.Background(), systemPrompt, "", generation.TextParams{})
		}
		image := &mocks.MockImageGenerator{URL: "https://images.example.com/p.png"}
		o := NewOrchestrator(text, image, &mocks.MockSearcher{}, cfg, testLogger())

		events := collectEvents(t, o.Run(context.Background(), testRequest(1)))

		var post *domain.PostProposal
		for _, ev := range events {
			if ev.Status == EventInProgress {
				post = ev.Post
			}
		}
		require.NotNil(t, post)
		assert.Equal(t, []string{"#post"}, post.Content.Hashtags)
	})
}
