package api

import (
	"github.com/postforge/postforge-api/internal/domain"
)

// CompanyProfileRequest is the wire shape of a company profile.
type CompanyProfileRequest struct {
	Name           string            `json:"name" validate:"required,min=1"`
	Description    string            `json:"description" validate:"required,min=1"`
	Values         []string          `json:"values" validate:"required,min=1"`
	TargetAudience []string          `json:"target_audience" validate:"required,min=1"`
	ToneOfVoice    string            `json:"tone_of_voice" validate:"required,min=1"`
	Industry       string            `json:"industry" validate:"required,min=1"`
	AdditionalInfo map[string]string `json:"additional_info"`
}

// BrandPersonaRequest is the wire shape of a brand hero persona.
type BrandPersonaRequest struct {
	Name        string   `json:"name" validate:"required,min=1"`
	Appearance  string   `json:"appearance" validate:"required,min=1"`
	Personality string   `json:"personality" validate:"required,min=1"`
	Backstory   string   `json:"backstory" validate:"required,min=1"`
	Values      []string `json:"values" validate:"required,min=1"`
	ToneOfVoice string   `json:"tone_of_voice"`
}

// GeneratePostsRequest represents the request body for generating post
// proposals. NumProposals outside the configured range is clamped by the
// pipeline, never rejected.
type GeneratePostsRequest struct {
	CompanyProfile     CompanyProfileRequest `json:"company_profile" validate:"required"`
	BrandPersona       BrandPersonaRequest   `json:"brand_persona" validate:"required"`
	NumProposals       int                   `json:"num_proposals"`
	IncludeTrends      bool                  `json:"include_trends"`
	IncludeCompetitors bool                  `json:"include_competitors"`
}

// ToDomain converts the request DTO to the pipeline's domain request.
func (r *GeneratePostsRequest) ToDomain() domain.GenerationRequest {
	return domain.GenerationRequest{
		Profile: domain.CompanyProfile{
			Name:           r.CompanyProfile.Name,
			Description:    r.CompanyProfile.Description,
			Values:         r.CompanyProfile.Values,
			TargetAudience: r.CompanyProfile.TargetAudience,
			ToneOfVoice:    r.CompanyProfile.ToneOfVoice,
			Industry:       r.CompanyProfile.Industry,
			AdditionalInfo: r.CompanyProfile.AdditionalInfo,
		},
		Persona: domain.BrandPersona{
			Name:        r.BrandPersona.Name,
			Appearance:  r.BrandPersona.Appearance,
			Personality: r.BrandPersona.Personality,
			Backstory:   r.BrandPersona.Backstory,
			Values:      r.BrandPersona.Values,
			ToneOfVoice: r.BrandPersona.ToneOfVoice,
		},
		Count:              r.NumProposals,
		IncludeTrends:      r.IncludeTrends,
		IncludeCompetitors: r.IncludeCompetitors,
	}
}
