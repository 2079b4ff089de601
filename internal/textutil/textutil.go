// Package textutil provides text-sanitization helpers used around the
// generation pipeline: hashtag formatting, truncation, input cleanup, and
// simple keyword extraction for search queries.
package textutil

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	hashtagInvalidChars = regexp.MustCompile(`[^a-zA-Z0-9#_]`)
	htmlTags            = regexp.MustCompile(`<[^>]*>`)
	scriptBlocks        = regexp.MustCompile(`(?is)<script.*?>.*?</script>`)
	eventHandlerAttrs   = regexp.MustCompile(`(?i)on\w+\s*=\s*`)
	nonWordChars        = regexp.MustCompile(`[^\w\s]`)
)

// FormatHashtags normalizes hashtags so each starts with '#' and contains
// only word characters. This is the character-set sanitation utility; the
// count/length guardrails live in the pipeline.
func FormatHashtags(hashtags []string) []string {
	formatted := make([]string, 0, len(hashtags))
	for _, h := range hashtags {
		if !strings.HasPrefix(h, "#") {
			h = "#" + h
		}
		h = hashtagInvalidChars.ReplaceAllString(h, "")
		formatted = append(formatted, h)
	}
	return formatted
}

// Truncate shortens text to at most maxLength characters, replacing the tail
// with "..." when it had to cut. Lengths are counted and cut in runes so
// multibyte text is never split mid-character.
func Truncate(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	return string([]rune(text)[:maxLength-3]) + "..."
}

// SanitizeInput strips HTML tags, script blocks and inline event handlers
// from free-form input before it is embedded in a prompt.
func SanitizeInput(text string) string {
	text = scriptBlocks.ReplaceAllString(text, "")
	text = htmlTags.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "javascript:", "")
	text = eventHandlerAttrs.ReplaceAllString(text, "")
	return text
}

// stopWords are excluded from keyword extraction.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "if": {},
	"because": {}, "as": {}, "what": {}, "when": {}, "where": {}, "how": {},
	"who": {}, "which": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "to": {}, "at": {}, "in": {}, "on": {}, "for": {}, "with": {},
	"by": {}, "about": {}, "of": {}, "from": {}, "up": {}, "down": {},
	"into": {}, "over": {}, "under": {}, "again": {}, "further": {},
	"then": {}, "once": {}, "here": {}, "there": {}, "all": {}, "any": {},
	"both": {}, "each": {}, "few": {}, "more": {}, "most": {}, "other": {},
	"some": {}, "such": {}, "no": {}, "nor": {}, "not": {}, "only": {},
	"own": {}, "same": {}, "so": {}, "than": {}, "too": {}, "very": {},
	"can": {}, "will": {}, "just": {}, "should": {}, "now": {},
}

// ExtractKeywords returns up to maxKeywords of the most frequent non-stopword
// terms (longer than 3 characters) in the text, most frequent first. Ties are
// broken alphabetically so the result is deterministic.
func ExtractKeywords(text string, maxKeywords int) []string {
	cleaned := nonWordChars.ReplaceAllString(strings.ToLower(text), "")

	counts := make(map[string]int)
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 3 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		counts[word]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > maxKeywords {
		words = words[:maxKeywords]
	}
	return words
}
