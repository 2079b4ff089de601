package pipeline

import (
	"io"
	"log/slog"
	"time"

	"github.com/postforge/postforge-api/internal/config"
	"github.com/postforge/postforge-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			Provider:    "openai",
			Model:       "gpt-4-turbo-preview",
			ImageModel:  "dall-e-3",
			ImageSize:   "1024x1024",
			CallTimeout: 5 * time.Second,
		},
		Pipeline: config.PipelineConfig{
			MinProposals:        10,
			MaxProposals:        20,
			BatchSize:           3,
			ReportTemperature:   0.5,
			BriefTemperature:    0.7,
			ProposalTemperature: 0.8,
			SceneTemperature:    0.7,
		},
		Search: config.SearchConfig{
			Enabled:    true,
			MaxResults: 5,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProfile() domain.CompanyProfile {
	return domain.CompanyProfile{
		Name:           "Acme Coffee",
		Description:    "Specialty coffee roaster sourcing single origin beans",
		Values:         []string{"quality", "sustainability"},
		TargetAudience: []string{"urban coffee enthusiasts"},
		ToneOfVoice:    "warm and knowledgeable",
		Industry:       "food and beverage",
	}
}

func testPersona() domain.BrandPersona {
	return domain.BrandPersona{
		Name:        "Barista Bea",
		Appearance:  "a cheerful barista with a green apron and round glasses",
		Personality: "enthusiastic, helpful, a little nerdy about coffee",
		Backstory:   "former chemist who fell in love with coffee extraction",
		Values:      []string{"craft", "honesty"},
		ToneOfVoice: "friendly and precise",
	}
}
