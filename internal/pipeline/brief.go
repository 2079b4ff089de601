package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/postforge/postforge-api/internal/config"
	"github.com/postforge/postforge-api/internal/domain"
	"github.com/postforge/postforge-api/internal/generation"
)

// BriefComposer derives the single reusable content brief from the context
// report and brand persona. One text call; failure is fatal to the request.
type BriefComposer struct {
	text        generation.TextGenerator
	logger      *slog.Logger
	temperature float64
	callTimeout time.Duration
}

// NewBriefComposer creates a BriefComposer.
func NewBriefComposer(
	text generation.TextGenerator,
	cfg *config.Config,
	logger *slog.Logger,
) *BriefComposer {
	return &BriefComposer{
		text:        text,
		logger:      logger.With("component", "brief_composer"),
		temperature: cfg.Pipeline.BriefTemperature,
		callTimeout: cfg.LLM.CallTimeout,
	}
}

// Compose produces the content brief shared read-only by every proposal task.
func (c *BriefComposer) Compose(
	ctx context.Context,
	report domain.ContextReport,
	persona domain.BrandPersona,
) (domain.ContentBrief, error) {
	c.logger.InfoContext(ctx, "composing content brief", "persona", persona.Name)

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	brief, err := c.text.GenerateText(
		callCtx,
		briefSystemPrompt(),
		briefUserPrompt(report, persona),
		generation.TextParams{Temperature: c.temperature},
	)
	if err != nil {
		return "", fmt.Errorf("content brief generation failed: %w", err)
	}

	return domain.ContentBrief(brief), nil
}
