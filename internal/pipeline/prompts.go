package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/postforge/postforge-api/internal/domain"
	"github.com/postforge/postforge-api/internal/textutil"
)

// buildSystemPrompt combines a base prompt with an explicit guardrail block.
// Guardrails here are prompt-level content-policy guidance; the output-shape
// guardrails live in guardrails.go.
func buildSystemPrompt(basePrompt string, guardrails []string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(basePrompt))
	sb.WriteString("\n\nGUARDRAILS:\n")
	for _, g := range guardrails {
		sb.WriteString("- ")
		sb.WriteString(g)
		sb.WriteString("\n")
	}
	return sb.String()
}

// mustJSON renders v as indented JSON for prompt embedding. Domain inputs
// are plain structs, so a marshal failure is a programming error; the raw
// fmt fallback keeps the prompt usable regardless.
func mustJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}

// sanitizedProfile returns a copy of the profile with free-form fields
// cleaned before prompt embedding.
func sanitizedProfile(profile domain.CompanyProfile) domain.CompanyProfile {
	profile.Name = textutil.SanitizeInput(profile.Name)
	profile.Description = textutil.SanitizeInput(profile.Description)
	profile.ToneOfVoice = textutil.SanitizeInput(profile.ToneOfVoice)
	profile.Industry = textutil.SanitizeInput(profile.Industry)
	return profile
}

func reportSystemPrompt() string {
	return buildSystemPrompt(`
You are an expert business analyst specializing in social media strategy.
Your task is to analyze company information and research trends and competitors
to create a comprehensive context report for social media content creation.
Analyze all the information and provide actionable insights for social media content creation.`,
		[]string{
			"Focus on extracting actionable insights for social media content",
			"Identify key themes and values that should be emphasized",
			"Determine appropriate tone and style based on company values and target audience",
			"Structure your analysis in a way that can be easily used for content creation",
			"Format your final response as a structured JSON object with company_analysis, trends, competitors, and insights sections",
		})
}

func reportUserPrompt(
	profile domain.CompanyProfile,
	includeTrends, includeCompetitors bool,
	trendResults, competitorResults []domain.SearchResult,
) string {
	var sb strings.Builder
	sb.WriteString("Please analyze the following company information and create a comprehensive context report:\n\n")
	sb.WriteString(mustJSON(sanitizedProfile(profile)))
	sb.WriteString("\n\nInclude the following in your analysis:\n")
	sb.WriteString("1. Company analysis: Key brand values, target audience, tone and style, unique selling points\n")
	fmt.Fprintf(&sb, "2. Trends analysis: Current trends in the industry (include trends: %t)\n", includeTrends)
	fmt.Fprintf(&sb, "3. Competitor analysis: What competitors are doing on social media (include competitors: %t)\n", includeCompetitors)
	sb.WriteString("4. Insights: Key themes, content opportunities, recommended approaches, specific content ideas\n")

	if len(trendResults) > 0 {
		sb.WriteString("\nTREND SEARCH RESULTS:\n")
		sb.WriteString(formatSearchResults(trendResults))
	}
	if len(competitorResults) > 0 {
		sb.WriteString("\nCOMPETITOR SEARCH RESULTS:\n")
		sb.WriteString(formatSearchResults(competitorResults))
	}

	sb.WriteString("\nFormat your response as a structured JSON object with these sections.")
	return sb.String()
}

func formatSearchResults(results []domain.SearchResult) string {
	var sb strings.Builder
	for _, r := range results {
		fmt.Fprintf(&sb, "Title: %s\nURL: %s\nSnippet: %s\n\n", r.Title, r.URL, r.Snippet)
	}
	return sb.String()
}

func briefSystemPrompt() string {
	return buildSystemPrompt(`
You are an expert social media content strategist. Your task is to create
a comprehensive content brief that will guide the creation of engaging
social media posts for a brand hero character.`,
		[]string{
			"Focus on creating actionable content guidelines",
			"Ensure alignment with brand values and tone of voice",
			"Incorporate insights from research",
			"Provide specific direction for content creation",
			"Structure the brief in a way that facilitates content generation",
			"Format your response as a comprehensive content brief, not as JSON",
		})
}

func briefUserPrompt(report domain.ContextReport, persona domain.BrandPersona) string {
	var sb strings.Builder
	sb.WriteString("Please create a content brief for social media posts based on the following information:\n\n")
	sb.WriteString("BRAND HERO:\n")
	sb.WriteString(mustJSON(persona))
	sb.WriteString("\n\nRESEARCH INSIGHTS:\n")
	sb.WriteString(mustJSON(report))
	sb.WriteString(`

In your content brief, include:
1. Key themes and topics to address
2. Tone and style guidelines aligned with the brand hero's personality
3. Content structure recommendations
4. Hashtag strategy
5. Call-to-action approaches
6. Content variation suggestions to maintain audience interest

Create a comprehensive and detailed brief that can be used to generate multiple unique social media posts.`)
	return sb.String()
}

func proposalSystemPrompt(persona domain.BrandPersona) string {
	base := fmt.Sprintf(`
You are %s, a brand hero for a company.
%s

Your personality is %s

Your values are: %s

You communicate with a %s tone.

Your task is to create engaging social media posts that represent the brand
and connect with the audience.`,
		persona.Name,
		persona.Backstory,
		persona.Personality,
		strings.Join(persona.Values, ", "),
		persona.ToneOfVoice,
	)

	return buildSystemPrompt(base, []string{
		fmt.Sprintf("Write in the voice of %s, with %s tone", persona.Name, persona.ToneOfVoice),
		"Create engaging content that resonates with the target audience",
		"Include relevant hashtags (2-5) that enhance discoverability",
		"Keep the main post text under 280 characters for optimal engagement",
		"Include a clear call-to-action when appropriate",
		"Ensure content aligns with brand values and messaging",
		"Avoid controversial or potentially offensive content",
		"Format your response as a JSON object with text, hashtags, and call_to_action fields",
	})
}

func proposalUserPrompt(brief domain.ContentBrief, proposalNum int) string {
	return fmt.Sprintf(`Please create social media post #%d based on the following content brief:

%s

Make this post unique and different from other proposals. Focus on a specific
aspect of the brief to ensure variety across all posts.

Format your response as a JSON object with:
1. "text": The main post text (under 280 characters)
2. "hashtags": An array of 2-5 relevant hashtags
3. "call_to_action": An optional call-to-action`, proposalNum, brief)
}

func sceneSystemPrompt() string {
	return `You are an expert visual director for social media content. Your task is to create
detailed scene descriptions for images that will accompany social media posts.
The descriptions should be vivid, specific, and aligned with both the post content
and the brand hero character.`
}

func sceneUserPrompt(persona domain.BrandPersona, content domain.PostContent) string {
	hashtags := "None"
	if len(content.Hashtags) > 0 {
		hashtags = strings.Join(content.Hashtags, " ")
	}
	cta := content.CallToAction
	if cta == "" {
		cta = "None"
	}

	return fmt.Sprintf(`Create a detailed scene description for an image featuring the brand hero character.

Brand Hero:
- Name: %s
- Appearance: %s
- Personality: %s

Post Content:
- Text: %s
- Hashtags: %s
- Call to Action: %s

The scene description should:
1. Be specific about the setting, action, and mood
2. Include relevant props or elements that connect to the post content
3. Describe the character's pose, expression, and activity
4. Suggest lighting, colors, and composition
5. Be suitable for an image model to generate a compelling image

Keep the description under 200 words and focus on visual elements.`,
		persona.Name, persona.Appearance, persona.Personality,
		content.Text, hashtags, cta)
}

// imagePrompt composes the final image-synthesis prompt: persona description,
// scene description, and a fixed appropriateness/style block.
func imagePrompt(persona domain.BrandPersona, sceneDescription string) string {
	return fmt.Sprintf(`Create a photorealistic image of %s, who is %s.

Character personality: %s

Scene context:
%s

The image should be:
- Professional and appropriate for business social media
- Visually appealing with good composition
- Well-lit with clear visibility of the character
- Consistent with the brand hero's description
- Relevant to the post content`,
		persona.Name, persona.Appearance, persona.Personality, sceneDescription)
}
