package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/postforge/postforge-api/internal/config"
	"github.com/postforge/postforge-api/internal/domain"
	"github.com/postforge/postforge-api/internal/generation"
	"github.com/postforge/postforge-api/internal/textutil"
)

// Reporter produces the structured research report that anchors a request.
// Its single text call is fatal on failure; the optional trend/competitor
// search enrichment degrades the report but never fails it.
type Reporter struct {
	text        generation.TextGenerator
	search      generation.Searcher
	logger      *slog.Logger
	temperature float64
	callTimeout time.Duration
	searchCfg   config.SearchConfig
}

// NewReporter creates a Reporter. The searcher may be nil when search
// enrichment is disabled.
func NewReporter(
	text generation.TextGenerator,
	search generation.Searcher,
	cfg *config.Config,
	logger *slog.Logger,
) *Reporter {
	return &Reporter{
		text:        text,
		search:      search,
		logger:      logger.With("component", "reporter"),
		temperature: cfg.Pipeline.ReportTemperature,
		callTimeout: cfg.LLM.CallTimeout,
		searchCfg:   cfg.Search,
	}
}

// Report performs the research stage for a profile. The report is always
// returned when the underlying text call succeeds, even if the model's
// answer fails to parse as the expected structure.
func (r *Reporter) Report(
	ctx context.Context,
	profile domain.CompanyProfile,
	includeTrends, includeCompetitors bool,
) (domain.ContextReport, error) {
	r.logger.InfoContext(ctx, "generating context report",
		"company", profile.Name,
		"include_trends", includeTrends,
		"include_competitors", includeCompetitors)

	trendResults := r.searchTrends(ctx, profile, includeTrends)
	competitorResults := r.searchCompetitors(ctx, profile, includeCompetitors)

	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	raw, err := r.text.GenerateText(
		callCtx,
		reportSystemPrompt(),
		reportUserPrompt(profile, includeTrends, includeCompetitors, trendResults, competitorResults),
		generation.TextParams{Temperature: r.temperature},
	)
	if err != nil {
		return domain.ContextReport{}, fmt.Errorf("context report generation failed: %w", err)
	}

	report := parseContextReport(raw)
	if report.ParseError != "" {
		r.logger.WarnContext(ctx, "context report did not parse as structured JSON, keeping raw response",
			"parse_error", report.ParseError)
	}
	return report, nil
}

// searchTrends runs the trend lookup when enabled. Failures are logged and
// degrade the report to an un-enriched one.
func (r *Reporter) searchTrends(
	ctx context.Context,
	profile domain.CompanyProfile,
	include bool,
) []domain.SearchResult {
	if !include || !r.searchCfg.Enabled || r.search == nil {
		return nil
	}

	keywords := textutil.ExtractKeywords(profile.Description, 5)
	query := fmt.Sprintf("current trends in %s %s", profile.Industry, strings.Join(keywords, " "))

	return r.runSearch(ctx, query, "trend")
}

// searchCompetitors runs the competitor lookup when enabled.
func (r *Reporter) searchCompetitors(
	ctx context.Context,
	profile domain.CompanyProfile,
	include bool,
) []domain.SearchResult {
	if !include || !r.searchCfg.Enabled || r.search == nil {
		return nil
	}

	query := fmt.Sprintf("competitors of %s in %s social media posts", profile.Name, profile.Industry)

	return r.runSearch(ctx, query, "competitor")
}

func (r *Reporter) runSearch(ctx context.Context, query, kind string) []domain.SearchResult {
	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	results, err := r.search.Search(callCtx, query, r.searchCfg.MaxResults)
	if err != nil {
		r.logger.WarnContext(ctx, "search enrichment failed, continuing without it",
			"kind", kind,
			"error", err)
		return nil
	}

	r.logger.DebugContext(ctx, "search enrichment succeeded",
		"kind", kind,
		"result_count", len(results))
	return results
}
