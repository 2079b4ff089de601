package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/postforge/postforge-api/internal/config"
	"github.com/postforge/postforge-api/internal/domain"
	"github.com/postforge/postforge-api/internal/generation"
)

// runState tracks the lifecycle of one generation run. States advance
// monotonically; Failed is terminal and reachable from any non-terminal
// state.
type runState string

const (
	stateCreated            runState = "created"
	stateRequestValidated   runState = "request_validated"
	stateContextReady       runState = "context_ready"
	stateBriefReady         runState = "brief_ready"
	stateProposalsStreaming runState = "proposals_streaming"
	stateCompleted          runState = "completed"
	stateFailed             runState = "failed"
)

// Orchestrator drives a full generation run: context report, content brief,
// batched proposal generation, per-proposal image synthesis and guardrail
// normalization, emitted as an incremental event stream.
type Orchestrator struct {
	reporter  *Reporter
	composer  *BriefComposer
	proposals *ProposalGenerator
	images    *ImageSynthesizer
	logger    *slog.Logger
	pipeline  config.PipelineConfig
}

// NewOrchestrator wires the pipeline stages from the given generators.
func NewOrchestrator(
	text generation.TextGenerator,
	image generation.ImageGenerator,
	search generation.Searcher,
	cfg *config.Config,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		reporter:  NewReporter(text, search, cfg, logger),
		composer:  NewBriefComposer(text, cfg, logger),
		proposals: NewProposalGenerator(text, cfg, logger),
		images:    NewImageSynthesizer(text, image, cfg, logger),
		logger:    logger.With("component", "orchestrator"),
		pipeline:  cfg.Pipeline,
	}
}

// Run executes a generation run and streams its progress. The returned
// channel carries exactly one started event, one in-progress event per
// proposal, and a single terminal completed or error event before closing.
func (o *Orchestrator) Run(ctx context.Context, req domain.GenerationRequest) <-chan StreamEvent {
	out := make(chan StreamEvent, 1)

	go func() {
		defer close(out)
		o.run(ctx, req, out)
	}()

	return out
}

func (o *Orchestrator) run(ctx context.Context, req domain.GenerationRequest, out chan<- StreamEvent) {
	state := stateCreated

	// emit delivers an event unless the caller has gone away.
	emit := func(ev StreamEvent) bool {
		select {
		case out <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	fail := func(err error) {
		o.transition(ctx, state, stateFailed)
		emit(errorEvent(err))
	}

	if !emit(startedEvent()) {
		return
	}

	if err := req.Validate(); err != nil {
		fail(err)
		return
	}
	if clamped := req.ClampCount(o.pipeline.MinProposals, o.pipeline.MaxProposals); clamped {
		o.logger.InfoContext(ctx, "proposal count clamped",
			"count", req.Count,
			"min", o.pipeline.MinProposals,
			"max", o.pipeline.MaxProposals)
	}
	state = o.transition(ctx, state, stateRequestValidated)

	report, err := o.reporter.Report(ctx, req.Profile, req.IncludeTrends, req.IncludeCompetitors)
	if err != nil {
		fail(err)
		return
	}
	state = o.transition(ctx, state, stateContextReady)

	brief, err := o.composer.Compose(ctx, report, req.Persona)
	if err != nil {
		fail(err)
		return
	}
	state = o.transition(ctx, state, stateBriefReady)

	state = o.transition(ctx, state, stateProposalsStreaming)

	// Image synthesis and normalization run concurrently per outcome so a
	// slow image call never stalls the proposal batches behind it.
	var wg sync.WaitGroup
	count := 0
	for outcome := range o.proposals.Generate(ctx, brief, req.Persona, req.Count) {
		count++
		wg.Add(1)
		go func(outcome ProposalOutcome) {
			defer wg.Done()
			proposal := outcome.Proposal
			proposal.Image = o.images.Synthesize(ctx, req.Persona, proposal.Content)
			proposal.Content = NormalizeContent(proposal.Content)
			emit(inProgressEvent(proposal))
		}(outcome)
	}
	wg.Wait()

	o.transition(ctx, state, stateCompleted)
	emit(completedEvent(count))
}

func (o *Orchestrator) transition(ctx context.Context, from, to runState) runState {
	o.logger.InfoContext(ctx, "run state transition", "from", string(from), "to", string(to))
	return to
}
