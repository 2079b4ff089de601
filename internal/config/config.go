package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
	Pipeline PipelineConfig `mapstructure:"pipeline" validate:"required"`
	Search   SearchConfig   `mapstructure:"search"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the external generation providers.
type LLMConfig struct {
	// Provider selects the text-generation backend: "openai" or "gemini".
	Provider string `mapstructure:"provider" validate:"required,oneof=openai gemini"`

	// OpenAIAPIKey authenticates chat-completion, image and search calls.
	// Image synthesis and search always go through OpenAI, so the key is
	// required even when text generation runs on Gemini.
	OpenAIAPIKey string `mapstructure:"openai_api_key" validate:"required"`

	// GeminiAPIKey is only consulted when Provider is "gemini".
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`

	// Model is the chat/text model name (e.g. gpt-4-turbo-preview or gemini-2.0-flash).
	Model string `mapstructure:"model" validate:"required"`

	// ImageModel is the image-synthesis model name (e.g. dall-e-3).
	ImageModel string `mapstructure:"image_model" validate:"required"`

	// ImageSize is the generated image size.
	ImageSize string `mapstructure:"image_size" validate:"required,oneof=1024x1024 1792x1024 1024x1792"`

	// CallTimeout bounds every individual generation call. A stalled
	// provider call fails its unit instead of hanging the whole batch.
	CallTimeout time.Duration `mapstructure:"call_timeout" validate:"required"`
}

// PipelineConfig contains the orchestration-level knobs consumed by the
// generation pipeline.
type PipelineConfig struct {
	// MinProposals and MaxProposals bound the per-request proposal count.
	// Out-of-range requests are clamped, never rejected.
	MinProposals int `mapstructure:"min_proposals" validate:"required,gt=0"`
	MaxProposals int `mapstructure:"max_proposals" validate:"required,gtefield=MinProposals"`

	// BatchSize bounds how many proposal generations run concurrently.
	// Batches are strictly sequential.
	BatchSize int `mapstructure:"batch_size" validate:"required,gt=0"`

	// Per-stage sampling temperatures.
	ReportTemperature   float64 `mapstructure:"report_temperature"   validate:"gte=0,lte=2"`
	BriefTemperature    float64 `mapstructure:"brief_temperature"    validate:"gte=0,lte=2"`
	ProposalTemperature float64 `mapstructure:"proposal_temperature" validate:"gte=0,lte=2"`
	SceneTemperature    float64 `mapstructure:"scene_temperature"    validate:"gte=0,lte=2"`
}

// SearchConfig contains settings for the web-search enrichment capability.
type SearchConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxResults int  `mapstructure:"max_results" validate:"gt=0"`
}
