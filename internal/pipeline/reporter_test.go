package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postforge/postforge-api/internal/domain"
	"github.com/postforge/postforge-api/internal/mocks"
)

const structuredReport = `{
	"company_analysis": {"strengths": ["sourcing"]},
	"trends": ["cold brew"],
	"competitors": ["Big Bean Co"],
	"insights": "highlight origin stories"
}`

func TestReporterReport(t *testing.T) {
	t.Run("structured answer with search enrichment", func(t *testing.T) {
		text := &mocks.MockTextGenerator{Response: structuredReport}
		search := &mocks.MockSearcher{
			Results: []domain.SearchResult{{Title: "Cold brew surges", URL: "https://example.com", Snippet: "..."}},
		}
		r := NewReporter(text, search, testConfig(), testLogger())

		report, err := r.Report(context.Background(), testProfile(), true, true)

		require.NoError(t, err)
		assert.Empty(t, report.ParseError)
		assert.NotEmpty(t, report.Trends)
		assert.Equal(t, 2, search.Calls())
		assert.Contains(t, search.Queries[0], "current trends in food and beverage")
		assert.Contains(t, search.Queries[1], "competitors of Acme Coffee")
	})

	t.Run("search failure degrades instead of failing the report", func(t *testing.T) {
		text := &mocks.MockTextGenerator{Response: structuredReport}
		search := &mocks.MockSearcher{Err: errors.New("search backend down")}
		r := NewReporter(text, search, testConfig(), testLogger())

		report, err := r.Report(context.Background(), testProfile(), true, true)

		require.NoError(t, err)
		assert.Empty(t, report.ParseError)
	})

	t.Run("search skipped when flags are off", func(t *testing.T) {
		text := &mocks.MockTextGenerator{Response: structuredReport}
		search := &mocks.MockSearcher{}
		r := NewReporter(text, search, testConfig(), testLogger())

		_, err := r.Report(context.Background(), testProfile(), false, false)

		require.NoError(t, err)
		assert.Equal(t, 0, search.Calls())
	})

	t.Run("search skipped when disabled in config", func(t *testing.T) {
		cfg := testConfig()
		cfg.Search.Enabled = false
		text := &mocks.MockTextGenerator{Response: structuredReport}
		search := &mocks.MockSearcher{}
		r := NewReporter(text, search, cfg, testLogger())

		_, err := r.Report(context.Background(), testProfile(), true, true)

		require.NoError(t, err)
		assert.Equal(t, 0, search.Calls())
	})

	t.Run("unparseable answer is wrapped, not dropped", func(t *testing.T) {
		text := &mocks.MockTextGenerator{Response: "here is my analysis in plain prose"}
		r := NewReporter(text, nil, testConfig(), testLogger())

		report, err := r.Report(context.Background(), testProfile(), false, false)

		require.NoError(t, err)
		assert.Equal(t, "here is my analysis in plain prose", report.RawResponse)
		assert.NotEmpty(t, report.ParseError)
	})

	t.Run("text failure is fatal", func(t *testing.T) {
		text := &mocks.MockTextGenerator{Err: errors.New("provider unavailable")}
		r := NewReporter(text, nil, testConfig(), testLogger())

		_, err := r.Report(context.Background(), testProfile(), false, false)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "context report generation failed")
	})
}
