package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/postforge/postforge-api/internal/config"
	"github.com/postforge/postforge-api/internal/generation"
	"google.golang.org/genai"
)

// Generator implements generation.TextGenerator using Google's Gemini API.
// It is the alternative text backend; image synthesis and search stay on the
// OpenAI platform client.
type Generator struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

var _ generation.TextGenerator = (*Generator)(nil)

// New creates a new Gemini text generator from the LLM configuration.
func New(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger: logger.With("component", "gemini_generator"),
		client: client,
		model:  cfg.Model,
	}, nil
}

// GenerateText performs one content-generation call and returns the
// concatenated text parts of the first candidate.
func (g *Generator) GenerateText(
	ctx context.Context,
	systemPrompt, userPrompt string,
	params generation.TextParams,
) (string, error) {
	g.logger.DebugContext(ctx, "making Gemini API call",
		"model", g.model,
		"temperature", params.Temperature,
		"user_prompt_length", len(userPrompt))

	temperature := float32(params.Temperature)
	cfg := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}
	if systemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(systemPrompt)},
		}
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{genai.NewPartFromText(userPrompt)},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no candidates", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.Text != "" {
			sb.WriteString(p.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	return sb.String(), nil
}
