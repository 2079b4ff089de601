package pipeline

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/postforge/postforge-api/internal/domain"
)

// proposalSchema is the strict shape proposal prompts ask the model for.
type proposalSchema struct {
	Text         string   `json:"text"`
	Hashtags     []string `json:"hashtags"`
	CallToAction string   `json:"call_to_action"`
}

// reportSchema is the strict shape the research prompt asks the model for.
type reportSchema struct {
	CompanyAnalysis json.RawMessage `json:"company_analysis"`
	Trends          json.RawMessage `json:"trends"`
	Competitors     json.RawMessage `json:"competitors"`
	Insights        json.RawMessage `json:"insights"`
}

// decodeLenient unmarshals model output into v. Models wrap JSON in code
// fences and emit near-JSON often enough that a syntax error gets one repair
// attempt before the decode is declared failed.
func decodeLenient(raw string, v any) error {
	data := []byte(stripCodeFence(raw))

	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}
	if _, ok := err.(*json.SyntaxError); ok {
		fixed, repairErr := jsonrepair.JSONRepair(string(data))
		if repairErr != nil {
			return err
		}
		return json.Unmarshal([]byte(fixed), v)
	}
	return err
}

// parsePostContent is a total coerce-or-default parser for proposal output.
// The returned flag reports whether the model's answer actually parsed; on
// failure the zero content is returned and the caller substitutes its
// deterministic fallback.
func parsePostContent(raw string) (domain.PostContent, bool) {
	var schema proposalSchema
	if err := decodeLenient(raw, &schema); err != nil || schema.Text == "" {
		return domain.PostContent{}, false
	}
	return domain.PostContent{
		Text:         schema.Text,
		Hashtags:     schema.Hashtags,
		CallToAction: schema.CallToAction,
	}, true
}

// parseContextReport is total: a malformed research answer is wrapped as
// raw response + parse diagnostic instead of being dropped, so a formatting
// slip never stalls the pipeline.
func parseContextReport(raw string) domain.ContextReport {
	var schema reportSchema
	if err := decodeLenient(raw, &schema); err != nil {
		return domain.ContextReport{
			RawResponse: raw,
			ParseError:  err.Error(),
		}
	}
	return domain.ContextReport{
		CompanyAnalysis: schema.CompanyAnalysis,
		Trends:          schema.Trends,
		Competitors:     schema.Competitors,
		Insights:        schema.Insights,
	}
}

// stripCodeFence removes a surrounding markdown code fence from model output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
