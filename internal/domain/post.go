package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for PostProposal
var (
	ErrEmptyProposalID = errors.New("proposal ID cannot be empty")
	ErrEmptyPostText   = errors.New("post text cannot be empty")
)

// PostContent is the textual payload of a single social post.
type PostContent struct {
	Text         string   `json:"text"`
	Hashtags     []string `json:"hashtags"`
	CallToAction string   `json:"call_to_action,omitempty"`
}

// PostImage is the synthesized image attached to a post. PromptUsed records
// the exact prompt sent to the image model for reproducibility.
type PostImage struct {
	URL         string `json:"image_url"`
	Description string `json:"description"`
	PromptUsed  string `json:"prompt_used,omitempty"`
}

// PostProposal is one candidate post produced for a request. It is created
// by the proposal generator, has an image attached exactly once, is clamped
// exactly once by the guardrail normalizer, and is then immutable.
type PostProposal struct {
	ID          uuid.UUID         `json:"id"`
	Content     PostContent       `json:"content"`
	Image       *PostImage        `json:"image,omitempty"`
	Inspiration map[string]string `json:"inspiration,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// NewPostProposal creates a new PostProposal with the given content and
// optional provenance metadata. It generates a new UUID and sets the
// creation timestamp.
func NewPostProposal(content PostContent, inspiration map[string]string) *PostProposal {
	return &PostProposal{
		ID:          uuid.New(),
		Content:     content,
		Inspiration: inspiration,
		CreatedAt:   time.Now().UTC(),
	}
}

// Validate checks if the PostProposal has valid data.
// Returns an error if any field fails validation.
func (p *PostProposal) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProposalID
	}
	if p.Content.Text == "" {
		return ErrEmptyPostText
	}
	return nil
}
