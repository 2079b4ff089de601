package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/postforge/postforge-api/internal/domain"
	"github.com/postforge/postforge-api/internal/generation"
)

// ErrPostNotFound is returned when a post proposal lookup misses. Proposals
// are not persisted, so every lookup currently misses.
var ErrPostNotFound = errors.New("post proposal not found")

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Input validation errors
	case errors.Is(err, domain.ErrEmptyCompanyName),
		errors.Is(err, domain.ErrEmptyCompanyDescription),
		errors.Is(err, domain.ErrEmptyCompanyValues),
		errors.Is(err, domain.ErrEmptyTargetAudience),
		errors.Is(err, domain.ErrEmptyIndustry),
		errors.Is(err, domain.ErrEmptyPersonaName),
		errors.Is(err, domain.ErrEmptyPersonaAppearance),
		errors.Is(err, domain.ErrEmptyPersonaPersonality),
		errors.Is(err, domain.ErrEmptyPersonaBackstory),
		errors.Is(err, domain.ErrEmptyPersonaValues):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound

	// Upstream provider failures
	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrImageGenerationFailed),
		errors.Is(err, generation.ErrSearchFailed):
		return http.StatusBadGateway

	case errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrEmptyCompanyName),
		errors.Is(err, domain.ErrEmptyCompanyDescription),
		errors.Is(err, domain.ErrEmptyCompanyValues),
		errors.Is(err, domain.ErrEmptyTargetAudience),
		errors.Is(err, domain.ErrEmptyIndustry):
		return "Invalid company profile: " + err.Error()

	case errors.Is(err, domain.ErrEmptyPersonaName),
		errors.Is(err, domain.ErrEmptyPersonaAppearance),
		errors.Is(err, domain.ErrEmptyPersonaPersonality),
		errors.Is(err, domain.ErrEmptyPersonaBackstory),
		errors.Is(err, domain.ErrEmptyPersonaValues):
		return "Invalid brand persona: " + err.Error()

	case errors.Is(err, ErrPostNotFound):
		return "Post proposal not found"

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse):
		return "Content generation failed"

	case errors.Is(err, generation.ErrImageGenerationFailed):
		return "Image generation failed"

	case errors.Is(err, generation.ErrSearchFailed):
		return "Search enrichment failed"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError reduces a validator error to a user-friendly
// message without echoing internal struct paths.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'GeneratePostsRequest.CompanyProfile.Name' Error:Field
		// validation for 'Name' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
