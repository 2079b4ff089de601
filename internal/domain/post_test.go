package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewPostProposal(t *testing.T) {
	t.Parallel()

	content := PostContent{
		Text:         "Meet our new roastery tour!",
		Hashtags:     []string{"#coffee", "#roastery"},
		CallToAction: "Book a visit today",
	}
	inspiration := map[string]string{"source": "Proposal 1"}

	proposal := NewPostProposal(content, inspiration)

	if proposal.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if proposal.Content.Text != content.Text {
		t.Errorf("Expected text %q, got %q", content.Text, proposal.Content.Text)
	}

	if proposal.Image != nil {
		t.Error("Expected no image on a freshly created proposal")
	}

	if proposal.Inspiration["source"] != "Proposal 1" {
		t.Errorf("Expected inspiration source to survive, got %v", proposal.Inspiration)
	}

	if proposal.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if err := proposal.Validate(); err != nil {
		t.Errorf("Expected valid proposal, got %v", err)
	}
}

func TestPostProposalValidate(t *testing.T) {
	t.Parallel()

	valid := PostProposal{
		ID:      uuid.New(),
		Content: PostContent{Text: "hello", Hashtags: []string{"#hi"}},
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalid := valid
	invalid.ID = uuid.Nil
	if err := invalid.Validate(); err != ErrEmptyProposalID {
		t.Errorf("Expected error %v, got %v", ErrEmptyProposalID, err)
	}

	invalid = valid
	invalid.Content.Text = ""
	if err := invalid.Validate(); err != ErrEmptyPostText {
		t.Errorf("Expected error %v, got %v", ErrEmptyPostText, err)
	}
}
