package mocks

import (
	"context"
	"sync"

	"github.com/postforge/postforge-api/internal/domain"
	"github.com/postforge/postforge-api/internal/generation"
)

// MockTextGenerator implements generation.TextGenerator for testing
type MockTextGenerator struct {
	// Custom behavior function, takes precedence over the default values
	GenerateTextFn func(ctx context.Context, systemPrompt, userPrompt string, params generation.TextParams) (string, error)

	// Default response values
	Response string
	Err      error

	// Call tracking for verification
	mu          sync.Mutex
	Count       int
	UserPrompts []string
	SysPrompts  []string
	Params      []generation.TextParams
}

// GenerateText implements the generation.TextGenerator interface
func (m *MockTextGenerator) GenerateText(
	ctx context.Context,
	systemPrompt, userPrompt string,
	params generation.TextParams,
) (string, error) {
	m.mu.Lock()
	m.Count++
	m.SysPrompts = append(m.SysPrompts, systemPrompt)
	m.UserPrompts = append(m.UserPrompts, userPrompt)
	m.Params = append(m.Params, params)
	m.mu.Unlock()

	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, systemPrompt, userPrompt, params)
	}
	return m.Response, m.Err
}

// Calls returns the number of GenerateText invocations so far.
func (m *MockTextGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Count
}

// MockImageGenerator implements generation.ImageGenerator for testing
type MockImageGenerator struct {
	GenerateImageFn func(ctx context.Context, prompt string) (string, error)

	URL string
	Err error

	mu      sync.Mutex
	Count   int
	Prompts []string
}

// GenerateImage implements the generation.ImageGenerator interface
func (m *MockImageGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Count++
	m.Prompts = append(m.Prompts, prompt)
	m.mu.Unlock()

	if m.GenerateImageFn != nil {
		return m.GenerateImageFn(ctx, prompt)
	}
	return m.URL, m.Err
}

// Calls returns the number of GenerateImage invocations so far.
func (m *MockImageGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Count
}

// MockSearcher implements generation.Searcher for testing
type MockSearcher struct {
	SearchFn func(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error)

	Results []domain.SearchResult
	Err     error

	mu      sync.Mutex
	Count   int
	Queries []string
}

// Search implements the generation.Searcher interface
func (m *MockSearcher) Search(
	ctx context.Context,
	query string,
	maxResults int,
) ([]domain.SearchResult, error) {
	m.mu.Lock()
	m.Count++
	m.Queries = append(m.Queries, query)
	m.mu.Unlock()

	if m.SearchFn != nil {
		return m.SearchFn(ctx, query, maxResults)
	}
	return m.Results, m.Err
}

// Calls returns the number of Search invocations so far.
func (m *MockSearcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Count
}
