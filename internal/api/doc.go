// Package api contains the HTTP layer: request DTOs, handlers, and the
// mapping from internal errors to safe client-facing responses. The post
// generation endpoint streams newline-delimited JSON so callers see each
// proposal as soon as the pipeline produces it.
package api
