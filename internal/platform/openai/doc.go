// Package openai adapts the official openai-go SDK to the generation
// interfaces: chat completions for text, DALL-E style image synthesis, and
// a model-backed web search used to enrich research reports.
package openai
