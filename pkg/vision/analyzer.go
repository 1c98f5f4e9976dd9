// Package vision identifies objects in camera frames with NVIDIA
// Nemotron VL via OpenRouter, so the professor can teach the French
// word for whatever the student holds up.
package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/franciscomoney/le-professeur-bizarre/internal/httpc"
	"github.com/franciscomoney/le-professeur-bizarre/internal/log"
)

// DefaultBaseURL is the OpenRouter API root.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// The VL model works best with a dead-simple identification prompt.
const systemPrompt = `You identify objects in images. Name the main object you see in 1-3 words. Be specific and accurate. If unclear, say 'unclear'.`

// Result is the outcome of analyzing one frame.
type Result struct {
	Description string `json:"description"`
	Unclear     bool   `json:"unclear"`
}

// Analyzer calls the OpenRouter chat completions endpoint with an
// image attachment.
type Analyzer struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

// NewAnalyzer creates an analyzer for the given vision-language model.
func NewAnalyzer(apiKey, model string) *Analyzer {
	return &Analyzer{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   model,
		http:    httpc.Client,
	}
}

// WithBaseURL overrides the API root (tests point it at httptest).
func (a *Analyzer) WithBaseURL(url string) *Analyzer {
	a.baseURL = url
	return a
}

type visionRequest struct {
	Model       string          `json:"model"`
	Messages    []visionMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type visionMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type visionResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			Reasoning string `json:"reasoning"`
		} `json:"message"`
	} `json:"choices"`
}

// Reasoning models sometimes spend the whole token budget thinking and
// return empty content. These patterns recover the identified object
// from the reasoning text.
var reasoningPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)it's\s+(?:a\s+)?([a-zA-Z\s]+?)(?:\.|,|$)`),
	regexp.MustCompile(`(?i)this\s+is\s+(?:a\s+)?([a-zA-Z\s]+?)(?:\.|,|$)`),
	regexp.MustCompile(`(?i)I\s+see\s+(?:a\s+)?([a-zA-Z\s]+?)(?:\.|,|$)`),
	regexp.MustCompile(`(?i)shows?\s+(?:a\s+)?([a-zA-Z\s]+?)(?:\.|,|$)`),
}

// AnalyzeImage asks the model what the image shows. imageBase64 may be
// bare base64 or a full data: URL; bare input is assumed JPEG.
func (a *Analyzer) AnalyzeImage(ctx context.Context, imageBase64, prompt string) (*Result, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("vision not available: no API key configured")
	}
	if !strings.HasPrefix(imageBase64, "data:") {
		imageBase64 = "data:image/jpeg;base64," + imageBase64
	}
	if prompt == "" {
		prompt = "What do you see?"
	}

	body, err := json.Marshal(visionRequest{
		Model: a.model,
		Messages: []visionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "image_url", ImageURL: &imageURL{URL: imageBase64}},
				{Type: "text", Text: prompt},
			}},
		},
		MaxTokens:   500,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal vision request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build vision request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "https://huggingface.co/spaces/Franciscomoney/le_professeur_bizarre")
	req.Header.Set("X-Title", "Le Professeur Bizarre Vision")

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vision request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision request rejected: status %d", resp.StatusCode)
	}

	var vr visionResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("decode vision response: %w", err)
	}
	if len(vr.Choices) == 0 {
		return nil, fmt.Errorf("vision response has no choices")
	}

	msg := vr.Choices[0].Message
	content := strings.TrimSpace(msg.Content)
	if content == "" && msg.Reasoning != "" {
		content = salvageFromReasoning(msg.Reasoning)
		if content != "" {
			log.Debug("vision: recovered object from reasoning", "object", content)
		}
	}

	content = strings.ToLower(strings.TrimSpace(content))
	if content == "" || content == "unclear" ||
		strings.Contains(content, "cannot") || strings.Contains(content, "can't") {
		return &Result{Description: "unclear", Unclear: true}, nil
	}

	return &Result{Description: content}, nil
}

// DescribeForTeaching turns an analysis into an instruction the voice
// model can act on directly.
func (a *Analyzer) DescribeForTeaching(ctx context.Context, imageBase64 string) (string, error) {
	result, err := a.AnalyzeImage(ctx, imageBase64, "Name the main object in this image in 1-3 words.")
	if err != nil {
		return "", err
	}
	if result.Unclear {
		return "VISION RESULT: The image is unclear or too dark. Ask the user to hold the object closer and make sure there is good lighting.", nil
	}
	return fmt.Sprintf("VISION RESULT: I see '%s'. Now teach the user the French word for '%s', the pronunciation, and a fun fact.",
		result.Description, result.Description), nil
}

// TranslateTextInImage reads visible text out of the frame and asks
// for a French rendering.
func (a *Analyzer) TranslateTextInImage(ctx context.Context, imageBase64 string) (string, error) {
	result, err := a.AnalyzeImage(ctx, imageBase64, "Is there any text in this image? If so, tell me what it says and translate it to French.")
	if err != nil {
		return "", err
	}
	return result.Description, nil
}

func salvageFromReasoning(reasoning string) string {
	for _, re := range reasoningPatterns {
		if m := re.FindStringSubmatch(reasoning); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
