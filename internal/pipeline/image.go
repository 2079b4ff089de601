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

// placeholderImageURL is returned whenever image synthesis fails so every
// proposal still carries a renderable image reference.
const placeholderImageURL = "https://via.placeholder.com/1024x1024?text=Image+Generation+Error"

// ImageSynthesizer turns a proposal's content into a persona-consistent image.
// It first asks the text model for a scene description, composes the full
// image prompt from the persona's visual identity, then calls the image model.
type ImageSynthesizer struct {
	text        generation.TextGenerator
	image       generation.ImageGenerator
	logger      *slog.Logger
	temperature float64
	callTimeout time.Duration
}

// NewImageSynthesizer creates an ImageSynthesizer.
func NewImageSynthesizer(
	text generation.TextGenerator,
	image generation.ImageGenerator,
	cfg *config.Config,
	logger *slog.Logger,
) *ImageSynthesizer {
	return &ImageSynthesizer{
		text:        text,
		image:       image,
		logger:      logger.With("component", "image_synthesizer"),
		temperature: cfg.Pipeline.SceneTemperature,
		callTimeout: cfg.LLM.CallTimeout,
	}
}

// Synthesize generates an image for the given post content. It never returns
// an error: a failed scene call degrades to a generic description and a failed
// image call degrades to the placeholder image.
func (s *ImageSynthesizer) Synthesize(
	ctx context.Context,
	persona domain.BrandPersona,
	content domain.PostContent,
) *domain.PostImage {
	scene := s.describeScene(ctx, persona, content)
	prompt := imagePrompt(persona, scene)

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	url, err := s.image.GenerateImage(callCtx, prompt)
	if err != nil {
		s.logger.WarnContext(ctx, "image generation failed, substituting placeholder",
			"error", err)
		return &domain.PostImage{
			URL:         placeholderImageURL,
			Description: "Error generating image",
		}
	}

	return &domain.PostImage{
		URL:         url,
		Description: scene,
		PromptUsed:  prompt,
	}
}

// describeScene asks the text model for a concrete visual scene matching the
// post. On failure it falls back to a generic description built from the
// persona name and the post text.
func (s *ImageSynthesizer) describeScene(
	ctx context.Context,
	persona domain.BrandPersona,
	content domain.PostContent,
) string {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	scene, err := s.text.GenerateText(
		callCtx,
		sceneSystemPrompt(),
		sceneUserPrompt(persona, content),
		generation.TextParams{Temperature: s.temperature},
	)
	if err != nil || scene == "" {
		s.logger.WarnContext(ctx, "scene description failed, using generic scene",
			"error", err)
		return fmt.Sprintf("A professional image of %s related to %s", persona.Name, content.Text)
	}
	return scene
}

// ImageValidation reports whether a generated image matches its persona.
type ImageValidation struct {
	IsValid    bool    `json:"is_valid"`
	Confidence float64 `json:"confidence"`
}

// ValidateImage checks persona consistency of a generated image. Vision-model
// scoring is not wired up yet, so every image passes with fixed confidence.
// TODO: score against persona appearance once a vision-capable client exists.
func (s *ImageSynthesizer) ValidateImage(_ context.Context, _ *domain.PostImage) ImageValidation {
	return ImageValidation{IsValid: true, Confidence: 0.95}
}
