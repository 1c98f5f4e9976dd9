package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visionServer(t *testing.T, content, reasoning string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer vl-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string          `json:"role"`
				Content json.RawMessage `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Contains(t, string(req.Messages[1].Content), "data:image/jpeg;base64,")

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content, "reasoning": reasoning}},
			},
		})
	}))
}

func TestAnalyzeImage_IdentifiesObject(t *testing.T) {
	srv := visionServer(t, "Coffee Mug", "")
	defer srv.Close()

	a := NewAnalyzer("vl-key", "test-vl").WithBaseURL(srv.URL)
	res, err := a.AnalyzeImage(context.Background(), "aGVsbG8=", "")
	require.NoError(t, err)
	assert.Equal(t, "coffee mug", res.Description)
	assert.False(t, res.Unclear)
}

func TestAnalyzeImage_SalvagesFromReasoning(t *testing.T) {
	srv := visionServer(t, "", "Looking at the frame, I see a red apple. The lighting is good.")
	defer srv.Close()

	a := NewAnalyzer("vl-key", "test-vl").WithBaseURL(srv.URL)
	res, err := a.AnalyzeImage(context.Background(), "aGVsbG8=", "")
	require.NoError(t, err)
	assert.Equal(t, "red apple", res.Description)
}

func TestAnalyzeImage_UnclearResponses(t *testing.T) {
	for _, content := range []string{"unclear", "I cannot identify this", ""} {
		srv := visionServer(t, content, "")
		a := NewAnalyzer("vl-key", "test-vl").WithBaseURL(srv.URL)
		res, err := a.AnalyzeImage(context.Background(), "aGVsbG8=", "")
		srv.Close()
		require.NoError(t, err)
		assert.True(t, res.Unclear, "content %q", content)
		assert.Equal(t, "unclear", res.Description)
	}
}

func TestAnalyzeImage_NoAPIKey(t *testing.T) {
	a := NewAnalyzer("", "test-vl")
	_, err := a.AnalyzeImage(context.Background(), "aGVsbG8=", "")
	assert.Error(t, err)
}

func TestDescribeForTeaching(t *testing.T) {
	srv := visionServer(t, "baguette", "")
	defer srv.Close()

	a := NewAnalyzer("vl-key", "test-vl").WithBaseURL(srv.URL)
	out, err := a.DescribeForTeaching(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Contains(t, out, "VISION RESULT: I see 'baguette'")
	assert.Contains(t, out, "French word")
}

func TestDescribeForTeaching_Unclear(t *testing.T) {
	srv := visionServer(t, "unclear", "")
	defer srv.Close()

	a := NewAnalyzer("vl-key", "test-vl").WithBaseURL(srv.URL)
	out, err := a.DescribeForTeaching(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Contains(t, out, "unclear or too dark")
}
