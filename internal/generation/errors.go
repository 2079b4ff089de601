package generation

import "errors"

// Common errors returned by generation providers
var (
	// ErrGenerationFailed is returned when a text-generation call fails for
	// any general reason
	ErrGenerationFailed = errors.New("failed to generate text")

	// ErrInvalidResponse is returned when the provider response is empty or
	// malformed at the transport level
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrImageGenerationFailed is returned when an image-synthesis call fails
	ErrImageGenerationFailed = errors.New("failed to generate image")

	// ErrSearchFailed is returned when the web-search capability fails
	ErrSearchFailed = errors.New("web search failed")

	// ErrInvalidConfig is returned when a provider configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
