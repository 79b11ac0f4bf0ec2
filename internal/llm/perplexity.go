package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	// PerplexityURL is the chat completions endpoint.
	PerplexityURL = "https://api.perplexity.ai/chat/completions"
	// DefaultPerplexityModel is the search-augmented model identifier.
	DefaultPerplexityModel = "llama-3.1-sonar-small-128k-online"
	// PerplexityPlaceholderKey is the sentinel shipped in example configs.
	// A credential equal to this value is treated as unset.
	PerplexityPlaceholderKey = "your-perplexity-api-key-here"
	// perplexityTimeout bounds every request to the API.
	perplexityTimeout = 30 * time.Second
)

// PerplexityClient implements Client for the Perplexity search-augmented API.
type PerplexityClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewPerplexityClient creates a Perplexity client. The credential is checked
// at call time so an unconfigured client can still be constructed.
func NewPerplexityClient(apiKey, model string) *PerplexityClient {
	if model == "" {
		model = DefaultPerplexityModel
	}
	return &PerplexityClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: PerplexityURL,
		httpClient: &http.Client{
			Timeout: perplexityTimeout,
		},
	}
}

// Name returns the provenance tag for Perplexity.
func (c *PerplexityClient) Name() string { return "perplexity" }

// Configured reports whether a real credential is present. The placeholder
// sentinel guards against shipping example credentials.
func (c *PerplexityClient) Configured() bool {
	return c.apiKey != "" && c.apiKey != PerplexityPlaceholderKey
}

type perplexityMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type perplexityRequest struct {
	Model           string              `json:"model"`
	Messages        []perplexityMessage `json:"messages"`
	MaxTokens       int                 `json:"max_tokens,omitempty"`
	Temperature     float64             `json:"temperature"`
	ReturnCitations bool                `json:"return_citations"`
}

type perplexityResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent sends a prompt to Perplexity and returns the response text.
func (c *PerplexityClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", &NotConfiguredError{Provider: c.Name()}
	}

	reqBody := perplexityRequest{
		Model: c.model,
		Messages: []perplexityMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens:       2048,
		Temperature:     0.2,
		ReturnCitations: true,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &HTTPError{Provider: c.Name(), Status: resp.StatusCode}
	}

	var result perplexityResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ProviderError{Provider: c.Name(), Message: "failed to decode response", Cause: err}
	}

	if result.Error.Message != "" {
		return "", &ProviderError{Provider: c.Name(), Message: fmt.Sprintf("API error: %s", result.Error.Message)}
	}

	if len(result.Choices) == 0 {
		return "", &ProviderError{Provider: c.Name(), Message: "no choices in response"}
	}

	return result.Choices[0].Message.Content, nil
}

// Close is a no-op; the HTTP client holds no persistent resources.
func (c *PerplexityClient) Close() error { return nil }

// WithBaseURL overrides the API endpoint. Used by tests to point the client
// at a local server.
func (c *PerplexityClient) WithBaseURL(url string) *PerplexityClient {
	c.baseURL = url
	return c
}
