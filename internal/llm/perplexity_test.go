package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerplexityConfigured(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		configured bool
	}{
		{"real key", "pplx-abc123", true},
		{"empty key", "", false},
		{"placeholder key", PerplexityPlaceholderKey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewPerplexityClient(tt.apiKey, "")
			assert.Equal(t, tt.configured, client.Configured())
		})
	}
}

func TestPerplexityNotConfiguredError(t *testing.T) {
	client := NewPerplexityClient(PerplexityPlaceholderKey, "")
	_, err := client.GenerateContent(context.Background(), "prompt")

	var notConfigured *NotConfiguredError
	require.ErrorAs(t, err, &notConfigured)
	assert.Equal(t, "perplexity", notConfigured.Provider)
}

func TestPerplexityGenerateContent(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "generated text"}}]}`))
	}))
	defer srv.Close()

	client := NewPerplexityClient("test-key", "").WithBaseURL(srv.URL)
	text, err := client.GenerateContent(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "generated text", text)

	assert.Equal(t, DefaultPerplexityModel, gotBody["model"])
	assert.Equal(t, true, gotBody["return_citations"])
	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "hello", msg["content"])
}

func TestPerplexityHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewPerplexityClient("test-key", "").WithBaseURL(srv.URL)
	_, err := client.GenerateContent(context.Background(), "hello")

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Status)
	assert.Equal(t, "perplexity", httpErr.Provider)
}

func TestPerplexityEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client := NewPerplexityClient("test-key", "").WithBaseURL(srv.URL)
	_, err := client.GenerateContent(context.Background(), "hello")

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
}

func TestPerplexityAPIErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error": {"message": "model overloaded"}}`))
	}))
	defer srv.Close()

	client := NewPerplexityClient("test-key", "").WithBaseURL(srv.URL)
	_, err := client.GenerateContent(context.Background(), "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestGeminiUnconfigured(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "", "")
	require.NoError(t, err)
	assert.False(t, client.Configured())

	_, genErr := client.GenerateContent(context.Background(), "prompt")
	var notConfigured *NotConfiguredError
	require.ErrorAs(t, genErr, &notConfigured)
	assert.Equal(t, "gemini", notConfigured.Provider)

	assert.NoError(t, client.Close())
}
