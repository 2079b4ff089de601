package domain

import "errors"

// Common validation errors for CompanyProfile and BrandPersona
var (
	ErrEmptyCompanyName        = errors.New("company name cannot be empty")
	ErrEmptyCompanyDescription = errors.New("company description cannot be empty")
	ErrEmptyCompanyValues      = errors.New("company values cannot be empty")
	ErrEmptyTargetAudience     = errors.New("target audience cannot be empty")
	ErrEmptyIndustry           = errors.New("company industry cannot be empty")

	ErrEmptyPersonaName        = errors.New("brand persona name cannot be empty")
	ErrEmptyPersonaAppearance  = errors.New("brand persona appearance cannot be empty")
	ErrEmptyPersonaPersonality = errors.New("brand persona personality cannot be empty")
	ErrEmptyPersonaBackstory   = errors.New("brand persona backstory cannot be empty")
	ErrEmptyPersonaValues      = errors.New("brand persona values cannot be empty")
)

// CompanyProfile describes the company on whose behalf posts are generated.
// It is an immutable input to the pipeline.
type CompanyProfile struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Values         []string          `json:"values"`
	TargetAudience []string          `json:"target_audience"`
	ToneOfVoice    string            `json:"tone_of_voice"`
	Industry       string            `json:"industry"`
	AdditionalInfo map[string]string `json:"additional_info,omitempty"`
}

// Validate checks if the CompanyProfile has valid data.
// Returns an error if any field fails validation.
func (p *CompanyProfile) Validate() error {
	if p.Name == "" {
		return ErrEmptyCompanyName
	}
	if p.Description == "" {
		return ErrEmptyCompanyDescription
	}
	if len(p.Values) == 0 {
		return ErrEmptyCompanyValues
	}
	if len(p.TargetAudience) == 0 {
		return ErrEmptyTargetAudience
	}
	if p.Industry == "" {
		return ErrEmptyIndustry
	}
	return nil
}

// BrandPersona is the brand hero character that voices the generated posts.
// It is an immutable input to the pipeline.
type BrandPersona struct {
	Name        string   `json:"name"`
	Appearance  string   `json:"appearance"`
	Personality string   `json:"personality"`
	Backstory   string   `json:"backstory"`
	Values      []string `json:"values"`
	ToneOfVoice string   `json:"tone_of_voice"`
}

// Validate checks if the BrandPersona has valid data.
// Returns an error if any field fails validation.
func (p *BrandPersona) Validate() error {
	if p.Name == "" {
		return ErrEmptyPersonaName
	}
	if p.Appearance == "" {
		return ErrEmptyPersonaAppearance
	}
	if p.Personality == "" {
		return ErrEmptyPersonaPersonality
	}
	if p.Backstory == "" {
		return ErrEmptyPersonaBackstory
	}
	if len(p.Values) == 0 {
		return ErrEmptyPersonaValues
	}
	return nil
}
