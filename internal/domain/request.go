package domain

// GenerationRequest is the caller's full input: who the company is, who the
// brand persona is, how many proposals to produce, and which research
// augmentations to run.
type GenerationRequest struct {
	Profile            CompanyProfile `json:"company_profile"`
	Persona            BrandPersona   `json:"brand_persona"`
	Count              int            `json:"num_proposals"`
	IncludeTrends      bool           `json:"include_trends"`
	IncludeCompetitors bool           `json:"include_competitors"`
}

// Validate checks the embedded profile and persona.
func (r *GenerationRequest) Validate() error {
	if err := r.Profile.Validate(); err != nil {
		return err
	}
	return r.Persona.Validate()
}

// ClampCount forces Count into [min, max]. Out-of-range values are clamped,
// never rejected. Returns true if the count was adjusted.
func (r *GenerationRequest) ClampCount(min, max int) bool {
	switch {
	case r.Count < min:
		r.Count = min
	case r.Count > max:
		r.Count = max
	default:
		return false
	}
	return true
}
