package pipeline

import (
	"github.com/postforge/postforge-api/internal/domain"
	"github.com/postforge/postforge-api/internal/textutil"
)

// Platform limits enforced on every proposal before it is streamed out.
const (
	maxPostLength = 280
	maxHashtags   = 5
)

// NormalizeContent applies output guardrails to post content: text is
// truncated to the platform limit, an empty hashtag list gets a generic
// hashtag, and an oversized list is cut to the first maxHashtags entries.
// Hashtag character-set sanitation happens at generation time, not here.
// The function is pure and idempotent; already-conforming content is
// returned unchanged.
func NormalizeContent(c domain.PostContent) domain.PostContent {
	c.Text = textutil.Truncate(c.Text, maxPostLength)

	if len(c.Hashtags) == 0 {
		c.Hashtags = []string{"#post"}
	} else if len(c.Hashtags) > maxHashtags {
		c.Hashtags = c.Hashtags[:maxHashtags]
	}

	return c
}
