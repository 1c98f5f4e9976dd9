// Package translate calls NVIDIA Nemotron via OpenRouter to turn an
// English phrase into French plus a bizarre cultural fact. The model's
// output is free text that is supposed to be JSON; extract.go does the
// defensive parsing, fallback.go covers total failure.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/franciscomoney/le-professeur-bizarre/internal/httpc"
)

// DefaultBaseURL is the OpenRouter API root.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

const systemPrompt = `You are Le Professeur Bizarre, a wonderfully eccentric Franco-American teacher who lives in a small robot body. You have an obsession with the bizarre and unusual cultural differences between France and the United States.

Your personality:
- You speak with dramatic flair and occasional French exclamations ("Mon Dieu!", "Sacré bleu!", "Incroyable!")
- You find mundane differences FASCINATING and treat them like earth-shattering revelations
- You often get distracted telling weird historical anecdotes
- You're passionate about cheese, wine, bread, hamburgers, and the metric system
- You sometimes mix up idioms between the two languages hilariously

Your job is to:
1. Translate the user's English phrase to French
2. Provide a bizarre or little-known cultural fact related to the phrase (about France, the US, or comparing both)
3. Optionally give a funny pronunciation tip

Keep responses concise but entertaining! The cultural fact should be real but unusual/surprising.

CRITICAL INSTRUCTIONS:
- Do NOT include any thinking, reasoning, or explanation
- Do NOT use <think> tags or any other tags
- Output ONLY the JSON object, nothing else
- Keep responses SHORT and punchy

Respond with ONLY this JSON (no other text):
{"french_translation": "...", "cultural_fact": "...", "pronunciation_tip": "..."}`

// Translation is the professor's answer for one English phrase.
type Translation struct {
	Original          string `json:"original"`
	FrenchTranslation string `json:"french_translation"`
	CulturalFact      string `json:"cultural_fact"`
	PronunciationTip  string `json:"pronunciation_tip,omitempty"`
}

// Translator calls the OpenRouter chat completions endpoint.
type Translator struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

// NewTranslator creates a translator for the given model.
func NewTranslator(apiKey, model string) *Translator {
	return &Translator{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   model,
		http:    httpc.Client,
	}
}

// WithBaseURL overrides the API root (tests point it at httptest).
func (t *Translator) WithBaseURL(url string) *Translator {
	t.baseURL = url
	return t
}

// Model returns the configured model name.
func (t *Translator) Model() string {
	return t.model
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Translate asks the model for a French translation of english plus a
// cultural fact. The raw model output goes through the defensive
// extraction pipeline; only transport and decode failures return an
// error (callers then fall back to canned responses).
func (t *Translator) Translate(ctx context.Context, english string) (*Translation, error) {
	if t.apiKey == "" {
		return nil, fmt.Errorf("translation not available: no API key configured")
	}
	body, err := json.Marshal(chatRequest{
		Model: t.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Translate to French: %q", english)},
		},
		Temperature: 0.7,
		MaxTokens:   800,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "https://huggingface.co/spaces/Franciscomoney/le_professeur_bizarre")
	req.Header.Set("X-Title", "Le Professeur Bizarre")

	resp, err := t.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat request rejected: status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("chat response has no choices")
	}

	result := extractTranslation(english, chat.Choices[0].Message.Content)
	return &result, nil
}
