package pipeline

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/postforge/postforge-api/internal/domain"
)

func TestNormalizeContent(t *testing.T) {
	t.Run("conforming content is unchanged", func(t *testing.T) {
		in := domain.PostContent{
			Text:         "Short and sweet",
			Hashtags:     []string{"#one", "#two"},
			CallToAction: "Read more",
		}
		assert.Equal(t, in, NormalizeContent(in))
	})

	t.Run("long text is truncated with ellipsis", func(t *testing.T) {
		in := domain.PostContent{
			Text:     strings.Repeat("a", 400),
			Hashtags: []string{"#x"},
		}
		out := NormalizeContent(in)
		assert.Len(t, out.Text, 280)
		assert.True(t, strings.HasSuffix(out.Text, "..."))
	})

	t.Run("multibyte text is counted in characters", func(t *testing.T) {
		in := domain.PostContent{
			Text:     strings.Repeat("é", 200),
			Hashtags: []string{"#x"},
		}
		assert.Equal(t, in, NormalizeContent(in))

		in.Text = strings.Repeat("é", 400)
		out := NormalizeContent(in)
		assert.Equal(t, 280, utf8.RuneCountInString(out.Text))
		assert.True(t, utf8.ValidString(out.Text))
		assert.Equal(t, out, NormalizeContent(out))
	})

	t.Run("text at the limit is kept", func(t *testing.T) {
		in := domain.PostContent{
			Text:     strings.Repeat("a", 280),
			Hashtags: []string{"#x"},
		}
		assert.Equal(t, in.Text, NormalizeContent(in).Text)
	})

	t.Run("empty hashtags get a generic one", func(t *testing.T) {
		out := NormalizeContent(domain.PostContent{Text: "hi"})
		assert.Equal(t, []string{"#post"}, out.Hashtags)
	})

	t.Run("oversized hashtag list is cut to five", func(t *testing.T) {
		in := domain.PostContent{
			Text:     "hi",
			Hashtags: []string{"#1", "#2", "#3", "#4", "#5", "#6", "#7"},
		}
		out := NormalizeContent(in)
		assert.Equal(t, []string{"#1", "#2", "#3", "#4", "#5"}, out.Hashtags)
	})

	t.Run("idempotent", func(t *testing.T) {
		in := domain.PostContent{
			Text:     strings.Repeat("b", 500),
			Hashtags: []string{"#1", "#2", "#3", "#4", "#5", "#6"},
		}
		once := NormalizeContent(in)
		assert.Equal(t, once, NormalizeContent(once))
	})
}
