package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTranslation(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantFrench string
		wantFact   string
	}{
		{
			name:       "bare json",
			content:    `{"french_translation": "Merci", "cultural_fact": "Fact.", "pronunciation_tip": "mer-SEE"}`,
			wantFrench: "Merci",
			wantFact:   "Fact.",
		},
		{
			name: "think tags stripped",
			content: `<think>The user wants a translation.
Let me think about cheese.</think>
{"french_translation": "Fromage", "cultural_fact": "400 kinds.", "pronunciation_tip": ""}`,
			wantFrench: "Fromage",
			wantFact:   "400 kinds.",
		},
		{
			name: "json code fence",
			content: "Here you go:\n```json\n" +
				`{"french_translation": "Pain", "cultural_fact": "Baguette law.", "pronunciation_tip": "pan"}` +
				"\n```",
			wantFrench: "Pain",
			wantFact:   "Baguette law.",
		},
		{
			name: "plain code fence",
			content: "```\n" +
				`{"french_translation": "Vin", "cultural_fact": "Wine lakes.", "pronunciation_tip": ""}` +
				"\n```",
			wantFrench: "Vin",
			wantFact:   "Wine lakes.",
		},
		{
			name:       "json embedded in chatter",
			content:    `Mon Dieu! Of course. {"french_translation": "Bonsoir", "cultural_fact": "Evening rules.", "pronunciation_tip": "bohn-SWAHR"} Voila!`,
			wantFrench: "Bonsoir",
			wantFact:   "Evening rules.",
		},
		{
			name:       "guillemets as quotes repaired",
			content:    `{"french_translation": «Salut», "cultural_fact": "Casual only.", "pronunciation_tip": ""}`,
			wantFrench: "Salut",
			wantFact:   "Casual only.",
		},
		{
			name:       "truncated json salvaged by field",
			content:    `{"french_translation": "Au revoir", "cultural_fact": "Many goodby`,
			wantFrench: "Au revoir",
			wantFact:   "Many goodby",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTranslation("input", tt.content)
			assert.Equal(t, "input", got.Original)
			assert.Equal(t, tt.wantFrench, got.FrenchTranslation)
			assert.Equal(t, tt.wantFact, got.CulturalFact)
		})
	}
}

func TestExtractTranslation_NoJSONAtAll(t *testing.T) {
	got := extractTranslation("Hello", "Je ne comprends pas la question.")
	assert.Equal(t, "Hello", got.Original)
	assert.Equal(t, "Je ne comprends pas la question.", got.FrenchTranslation)
	assert.Contains(t, got.CulturalFact, "confused")
}

func TestExtractTranslation_EmptyContent(t *testing.T) {
	got := extractTranslation("Hello", "")
	assert.Equal(t, "Translation unavailable", got.FrenchTranslation)
	assert.NotEmpty(t, got.CulturalFact)
}
