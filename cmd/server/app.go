package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/postforge/postforge-api/internal/config"
	"github.com/postforge/postforge-api/internal/generation"
	"github.com/postforge/postforge-api/internal/pipeline"
	"github.com/postforge/postforge-api/internal/platform/gemini"
	"github.com/postforge/postforge-api/internal/platform/openai"
)

// application holds the wired dependencies of the running server.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	orchestrator *pipeline.Orchestrator
}

// newApplication wires the generation clients and the pipeline. The OpenAI
// client always serves image synthesis and search; text generation can be
// switched to Gemini via llm.provider.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	openaiClient, err := openai.New(logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	var text generation.TextGenerator = openaiClient
	if cfg.LLM.Provider == "gemini" {
		geminiGen, err := gemini.New(ctx, logger, cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini generator: %w", err)
		}
		text = geminiGen
	}

	var search generation.Searcher
	if cfg.Search.Enabled {
		search = openaiClient
	}

	return &application{
		config:       cfg,
		logger:       logger,
		orchestrator: pipeline.NewOrchestrator(text, openaiClient, search, cfg, logger),
	}, nil
}
