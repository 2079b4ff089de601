package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/postforge/postforge-api/internal/config"
	"github.com/postforge/postforge-api/internal/domain"
	"github.com/postforge/postforge-api/internal/generation"
	"github.com/postforge/postforge-api/internal/textutil"
)

// ProposalOutcome is the per-task result of one proposal generation. Fallback
// marks a proposal whose content had to be substituted; the batch treats it
// the same as a success so one unit's failure never aborts its siblings.
type ProposalOutcome struct {
	Proposal *domain.PostProposal
	Fallback bool
	Reason   string
}

// ProposalGenerator produces N independent post proposals from a shared
// brief, executed in fixed-size concurrent batches. Batches are strictly
// sequential: batch k+1 never starts before every task of batch k has
// settled, which bounds simultaneous outstanding calls to the provider.
type ProposalGenerator struct {
	text        generation.TextGenerator
	logger      *slog.Logger
	batchSize   int
	temperature float64
	callTimeout time.Duration
}

// NewProposalGenerator creates a ProposalGenerator.
func NewProposalGenerator(
	text generation.TextGenerator,
	cfg *config.Config,
	logger *slog.Logger,
) *ProposalGenerator {
	batchSize := cfg.Pipeline.BatchSize
	if batchSize <= 0 {
		batchSize = 1
	}
	return &ProposalGenerator{
		text:        text,
		logger:      logger.With("component", "proposal_generator"),
		batchSize:   batchSize,
		temperature: cfg.Pipeline.ProposalTemperature,
		callTimeout: cfg.LLM.CallTimeout,
	}
}

// Generate streams exactly count outcomes on the returned channel and then
// closes it. Within a batch all tasks are dispatched before any is awaited;
// outcomes are emitted in completion order, each carrying its originating
// index in the proposal's provenance metadata.
func (g *ProposalGenerator) Generate(
	ctx context.Context,
	brief domain.ContentBrief,
	persona domain.BrandPersona,
	count int,
) <-chan ProposalOutcome {
	out := make(chan ProposalOutcome, g.batchSize)

	go func() {
		defer close(out)

		g.logger.InfoContext(ctx, "generating post proposals",
			"count", count,
			"batch_size", g.batchSize)

		for batchStart := 1; batchStart <= count; batchStart += g.batchSize {
			if ctx.Err() != nil {
				g.logger.InfoContext(ctx, "request canceled, stopping proposal batches",
					"next_batch_start", batchStart)
				return
			}
			batchEnd := batchStart + g.batchSize - 1
			if batchEnd > count {
				batchEnd = count
			}

			var wg sync.WaitGroup
			for n := batchStart; n <= batchEnd; n++ {
				wg.Add(1)
				go func(proposalNum int) {
					defer wg.Done()
					select {
					case out <- g.generateOne(ctx, brief, persona, proposalNum):
					case <-ctx.Done():
					}
				}(n)
			}
			// The whole batch settles before the next one starts.
			wg.Wait()
		}
	}()

	return out
}

// generateOne runs a single proposal task. It never fails: provider errors
// and malformed answers are converted into deterministic fallback content
// with the cause recorded in the proposal's provenance metadata.
func (g *ProposalGenerator) generateOne(
	ctx context.Context,
	brief domain.ContentBrief,
	persona domain.BrandPersona,
	proposalNum int,
) (outcome ProposalOutcome) {
	defer func() {
		// A panicking task must not take its batch down with it.
		if r := recover(); r != nil {
			g.logger.ErrorContext(ctx, "proposal task panicked",
				"proposal_num", proposalNum,
				"panic", r)
			outcome = g.errorOutcome(proposalNum, fmt.Sprintf("panic: %v", r))
		}
	}()

	callCtx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	raw, err := g.text.GenerateText(
		callCtx,
		proposalSystemPrompt(persona),
		proposalUserPrompt(brief, proposalNum),
		generation.TextParams{Temperature: g.temperature},
	)
	if err != nil {
		g.logger.WarnContext(ctx, "proposal generation failed, substituting error fallback",
			"proposal_num", proposalNum,
			"error", err)
		return g.errorOutcome(proposalNum, err.Error())
	}

	content, ok := parsePostContent(raw)
	if !ok {
		g.logger.WarnContext(ctx, "failed to parse proposal JSON, substituting fallback",
			"proposal_num", proposalNum,
			"response_length", len(raw))
		proposal := domain.NewPostProposal(
			domain.PostContent{
				Text:     fmt.Sprintf("Post proposal #%d", proposalNum),
				Hashtags: []string{"#fallback"},
			},
			map[string]string{
				"source": fmt.Sprintf("Proposal %d", proposalNum),
				"index":  strconv.Itoa(proposalNum),
			},
		)
		return ProposalOutcome{Proposal: proposal, Fallback: true, Reason: "malformed JSON response"}
	}

	content.Hashtags = textutil.FormatHashtags(content.Hashtags)
	proposal := domain.NewPostProposal(content, map[string]string{
		"source":        fmt.Sprintf("Proposal %d", proposalNum),
		"index":         strconv.Itoa(proposalNum),
		"brief_excerpt": briefExcerpt(brief),
	})
	return ProposalOutcome{Proposal: proposal}
}

// errorOutcome builds the fallback for a proposal whose generation call
// failed outright, with the error recorded in provenance metadata.
func (g *ProposalGenerator) errorOutcome(proposalNum int, reason string) ProposalOutcome {
	proposal := domain.NewPostProposal(
		domain.PostContent{
			Text:     fmt.Sprintf("Error generating post content for proposal #%d", proposalNum),
			Hashtags: []string{"#error"},
		},
		map[string]string{
			"source": fmt.Sprintf("Error in proposal %d", proposalNum),
			"index":  strconv.Itoa(proposalNum),
			"error":  reason,
		},
	)
	return ProposalOutcome{Proposal: proposal, Fallback: true, Reason: reason}
}

// briefExcerpt keeps the first 100 characters of the brief for provenance,
// cut on a rune boundary.
func briefExcerpt(brief domain.ContentBrief) string {
	r := []rune(string(brief))
	if len(r) > 100 {
		return string(r[:100]) + "..."
	}
	return string(brief)
}
