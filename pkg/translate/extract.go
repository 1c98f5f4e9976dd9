package translate

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Reasoning models leak thinking tags and code fences around the JSON
// they were told to emit bare. The extraction pipeline peels those
// layers off, then tries progressively cruder repairs before giving up
// field by field.

var (
	thinkRe = regexp.MustCompile(`(?s)<think>.*?</think>`)
	jsonRe  = regexp.MustCompile(`(?s)\{[^{}]*"french_translation"[^{}]*\}`)

	frenchFieldRe = regexp.MustCompile(`"french_translation"\s*:\s*"([^"]*)`)
	factFieldRe   = regexp.MustCompile(`"cultural_fact"\s*:\s*"([^"]*)`)
	tipFieldRe    = regexp.MustCompile(`"pronunciation_tip"\s*:\s*"([^"]*)`)
)

// extractTranslation salvages a Translation from raw model output.
// It never fails: unusable content degrades to a confused-professor
// response so the caller always has something to say.
func extractTranslation(original, content string) Translation {
	content = thinkRe.ReplaceAllString(content, "")
	content = stripFences(content)

	if match := jsonRe.FindString(content); match != "" {
		content = match
	}
	content = strings.TrimSpace(content)

	var parsed struct {
		FrenchTranslation string `json:"french_translation"`
		CulturalFact      string `json:"cultural_fact"`
		PronunciationTip  string `json:"pronunciation_tip"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		repaired := repairJSON(content)
		if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
			return salvageFields(original, content)
		}
	}

	if parsed.FrenchTranslation == "" && parsed.CulturalFact == "" {
		return confusedResponse(original, content)
	}

	return Translation{
		Original:          original,
		FrenchTranslation: parsed.FrenchTranslation,
		CulturalFact:      parsed.CulturalFact,
		PronunciationTip:  parsed.PronunciationTip,
	}
}

// stripFences removes markdown code fences around the payload.
func stripFences(content string) string {
	if i := strings.Index(content, "```json"); i >= 0 {
		content = content[i+len("```json"):]
		if j := strings.Index(content, "```"); j >= 0 {
			content = content[:j]
		}
		return content
	}
	if i := strings.Index(content, "```"); i >= 0 {
		content = content[i+3:]
		if j := strings.Index(content, "```"); j >= 0 {
			content = content[:j]
		}
	}
	return content
}

// repairJSON fixes the common ways the model truncates its output:
// French guillemets inside strings, an unterminated string, a missing
// closing brace.
func repairJSON(content string) string {
	content = strings.ReplaceAll(content, "«", `"`)
	content = strings.ReplaceAll(content, "»", `"`)
	content = strings.TrimSpace(content)

	if strings.Count(content, `"`)%2 == 1 {
		content += `"`
	}
	if !strings.HasSuffix(content, "}") {
		content += "}"
	}
	return content
}

// salvageFields pulls whatever field values survive in broken JSON.
// Content with no recognizable fields falls through to the confused
// response instead of claiming a translation it never got.
func salvageFields(original, content string) Translation {
	tr := Translation{
		Original:          original,
		FrenchTranslation: "Translation error",
		CulturalFact:      "Mon Dieu! The response was incomplete.",
	}
	found := false
	if m := frenchFieldRe.FindStringSubmatch(content); m != nil {
		tr.FrenchTranslation = m[1]
		found = true
	}
	if m := factFieldRe.FindStringSubmatch(content); m != nil {
		tr.CulturalFact = m[1]
		found = true
	}
	if m := tipFieldRe.FindStringSubmatch(content); m != nil {
		tr.PronunciationTip = m[1]
		found = true
	}
	if !found {
		return confusedResponse(original, content)
	}
	return tr
}

// confusedResponse is the last resort when the output contains no JSON
// at all: reuse the raw text as the "translation", capped short.
func confusedResponse(original, content string) Translation {
	french := strings.TrimSpace(content)
	if french == "" {
		french = "Translation unavailable"
	}
	if len(french) > 200 {
		french = french[:200]
	}
	return Translation{
		Original:          original,
		FrenchTranslation: french,
		CulturalFact:      "Mon Dieu! My circuits got confused. But did you know that the French eat approximately 26kg of cheese per person per year?",
	}
}
