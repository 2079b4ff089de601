package generation

import (
	"context"

	"github.com/postforge/postforge-api/internal/domain"
)

// TextParams carries per-call sampling parameters. Each pipeline stage uses
// its own configured preset.
type TextParams struct {
	Temperature float64
}

// TextGenerator defines the interface for a single text-generation call.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
// Implementations do no retrying of their own: failures are propagated and
// the pipeline decides whether they are fatal or recoverable.
type TextGenerator interface {
	// GenerateText produces a completion for the given system and user
	// prompts. The context carries the per-call deadline set by the caller.
	GenerateText(ctx context.Context, systemPrompt, userPrompt string, params TextParams) (string, error)
}

// ImageGenerator defines the interface for a single image-synthesis call.
type ImageGenerator interface {
	// GenerateImage synthesizes an image for the prompt and returns its URL.
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Searcher defines the web-search capability used to enrich the context
// report. Search failures degrade the report; they are never fatal.
type Searcher interface {
	// Search returns up to maxResults hits for the query.
	Search(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error)
}
