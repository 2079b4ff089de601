package domain

import "encoding/json"

// ContextReport is the structured research output produced once per request
// and consumed read-only by every subsequent stage. The four sections are
// kept opaque: the pipeline never interprets them, it only forwards them
// into later prompts. When the model's answer fails to parse as the expected
// structure, RawResponse and ParseError carry the answer through instead of
// dropping it.
type ContextReport struct {
	CompanyAnalysis json.RawMessage `json:"company_analysis,omitempty"`
	Trends          json.RawMessage `json:"trends,omitempty"`
	Competitors     json.RawMessage `json:"competitors,omitempty"`
	Insights        json.RawMessage `json:"insights,omitempty"`

	RawResponse string `json:"raw_response,omitempty"`
	ParseError  string `json:"parse_error,omitempty"`
}

// ContentBrief is the shared creative direction document derived once per
// request and reused read-only across all proposal-generation tasks.
type ContentBrief string

// SearchResult is one hit from the web-search capability used to enrich the
// context report.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}
