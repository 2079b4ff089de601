package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file, and both override the
// built-in defaults. Returns a populated Config or an error if loading
// or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; the environment carries the rest.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("POSTFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers the default value for every setting so a deployment
// only has to provide API keys.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("llm.provider", "openai")
	// Empty defaults keep the keys visible to AutomaticEnv during Unmarshal.
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model", "gpt-4-turbo-preview")
	v.SetDefault("llm.image_model", "dall-e-3")
	v.SetDefault("llm.image_size", "1024x1024")
	v.SetDefault("llm.call_timeout", 60*time.Second)

	v.SetDefault("pipeline.min_proposals", 10)
	v.SetDefault("pipeline.max_proposals", 20)
	v.SetDefault("pipeline.batch_size", 3)
	v.SetDefault("pipeline.report_temperature", 0.5)
	v.SetDefault("pipeline.brief_temperature", 0.7)
	v.SetDefault("pipeline.proposal_temperature", 0.8)
	v.SetDefault("pipeline.scene_temperature", 0.7)

	v.SetDefault("search.enabled", true)
	v.SetDefault("search.max_results", 5)
}
