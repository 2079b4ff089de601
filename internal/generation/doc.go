// Package generation provides interfaces for interacting with external
// AI/LLM services: text completion, image synthesis, and web search. It
// abstracts the details of provider integration (OpenAI, Gemini), allowing
// the pipeline to generate branded post proposals without coupling to
// specific external services.
package generation
