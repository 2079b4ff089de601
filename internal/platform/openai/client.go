package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/postforge/postforge-api/internal/config"
	"github.com/postforge/postforge-api/internal/domain"
	"github.com/postforge/postforge-api/internal/generation"
)

// Client implements generation.TextGenerator, generation.ImageGenerator and
// generation.Searcher using the official openai-go SDK. It performs no
// retries of its own: provider failures are propagated to the caller.
type Client struct {
	logger     *slog.Logger
	client     openai.Client
	model      string
	imageModel string
	imageSize  openai.ImageGenerateParamsSize
}

// Statically assert interface compliance.
var (
	_ generation.TextGenerator  = (*Client)(nil)
	_ generation.ImageGenerator = (*Client)(nil)
	_ generation.Searcher       = (*Client)(nil)
)

// New creates a new OpenAI platform client from the LLM configuration.
func New(logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ImageModel == "" {
		return nil, fmt.Errorf("%w: image model name cannot be empty", generation.ErrInvalidConfig)
	}

	size, err := parseImageSize(cfg.ImageSize)
	if err != nil {
		return nil, err
	}

	return &Client{
		logger:     logger.With("component", "openai_client"),
		client:     openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey)),
		model:      cfg.Model,
		imageModel: cfg.ImageModel,
		imageSize:  size,
	}, nil
}

func parseImageSize(size string) (openai.ImageGenerateParamsSize, error) {
	switch size {
	case "", "1024x1024":
		return openai.ImageGenerateParamsSize1024x1024, nil
	case "1792x1024":
		return openai.ImageGenerateParamsSize1792x1024, nil
	case "1024x1792":
		return openai.ImageGenerateParamsSize1024x1792, nil
	default:
		return "", fmt.Errorf("%w: unsupported image size %q", generation.ErrInvalidConfig, size)
	}
}

// GenerateText performs one chat-completion call and returns the text of the
// first choice.
func (c *Client) GenerateText(
	ctx context.Context,
	systemPrompt, userPrompt string,
	params generation.TextParams,
) (string, error) {
	c.logger.DebugContext(ctx, "making chat completion call",
		"model", c.model,
		"temperature", params.Temperature,
		"user_prompt_length", len(userPrompt))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(params.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", generation.ErrInvalidResponse)
	}

	return resp.Choices[0].Message.Content, nil
}

// GenerateImage performs one image-synthesis call and returns the image URL.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	c.logger.DebugContext(ctx, "making image generation call",
		"model", c.imageModel,
		"prompt_length", len(prompt))

	resp, err := c.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt: prompt,
		Model:  openai.ImageModel(c.imageModel),
		Size:   c.imageSize,
		N:      openai.Int(1),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrImageGenerationFailed, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("%w: no image in response", generation.ErrImageGenerationFailed)
	}

	return resp.Data[0].URL, nil
}

const searchSystemPrompt = `You are a web research assistant. Answer with a JSON array of search results.
Each element must be an object with "title", "url" and "snippet" string fields. Respond with JSON only.`

// Search runs a model-backed web search and returns up to maxResults hits.
// The model is asked for a JSON array of results; a malformed answer fails
// the search, which callers treat as a degraded (not fatal) condition.
func (c *Client) Search(
	ctx context.Context,
	query string,
	maxResults int,
) ([]domain.SearchResult, error) {
	userPrompt := fmt.Sprintf("Find up to %d current, relevant results for: %s", maxResults, query)

	raw, err := c.GenerateText(ctx, searchSystemPrompt, userPrompt, generation.TextParams{Temperature: 0.2})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrSearchFailed, err)
	}

	var results []domain.SearchResult
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &results); err != nil {
		return nil, fmt.Errorf("%w: malformed results: %v", generation.ErrSearchFailed, err)
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// stripCodeFence removes a surrounding markdown code fence, which chat models
// like to wrap JSON answers in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
