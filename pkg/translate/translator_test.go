package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		})
	}))
}

func TestTranslate_CleanJSON(t *testing.T) {
	srv := chatServer(t, `{"french_translation": "Bonjour", "cultural_fact": "Shops expect it.", "pronunciation_tip": "bone-JOOR"}`)
	defer srv.Close()

	tr := NewTranslator("test-key", "test-model").WithBaseURL(srv.URL)
	got, err := tr.Translate(context.Background(), "Hello")
	require.NoError(t, err)

	assert.Equal(t, "Hello", got.Original)
	assert.Equal(t, "Bonjour", got.FrenchTranslation)
	assert.Equal(t, "Shops expect it.", got.CulturalFact)
	assert.Equal(t, "bone-JOOR", got.PronunciationTip)
}

func TestTranslate_TransportError(t *testing.T) {
	tr := NewTranslator("test-key", "test-model").WithBaseURL("http://127.0.0.1:1")
	_, err := tr.Translate(context.Background(), "Hello")
	assert.Error(t, err)
}

func TestTranslate_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	tr := NewTranslator("test-key", "test-model").WithBaseURL(srv.URL)
	_, err := tr.Translate(context.Background(), "Hello")
	assert.Error(t, err)
}

func TestFallback_KeepsOriginalText(t *testing.T) {
	f := Fallback("Where is the library?")
	assert.Equal(t, "Where is the library?", f.Original)
	assert.NotEmpty(t, f.FrenchTranslation)
	assert.NotEmpty(t, f.CulturalFact)
}
