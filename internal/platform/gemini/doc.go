// Package gemini adapts the Google Gemini API (google.golang.org/genai) to
// the generation.TextGenerator interface as an alternative text backend.
package gemini
