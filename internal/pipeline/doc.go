// Package pipeline implements the post-generation orchestration: research
// report, content brief, batched proposal generation, image synthesis,
// guardrail normalization, and the incremental event stream that exposes
// finished proposals to the caller as they complete.
//
// The pipeline has exactly two fatal stages (report and brief). Every
// per-proposal failure after that is isolated: a proposal falls back to
// deterministic content, an image falls back to a placeholder, and the
// stream always terminates with exactly one completed or error event.
package pipeline
