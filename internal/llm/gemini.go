package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is the generation model used unless overridden.
const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client. An empty API key yields an
// unconfigured client whose calls fail with *NotConfiguredError rather than a
// construction error, so the server can start without AI credentials.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = DefaultGeminiModel
	}
	if apiKey == "" {
		return &GeminiClient{model: model}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Name returns the provenance tag for Gemini.
func (c *GeminiClient) Name() string { return "gemini" }

// Configured reports whether a credential was supplied.
func (c *GeminiClient) Configured() bool { return c.client != nil }

// GenerateContent sends a prompt to Gemini and returns the response text.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", &NotConfiguredError{Provider: c.Name()}
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1) // Low temperature for consistent output

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Message: "generate content failed", Cause: err}
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &ProviderError{Provider: "gemini", Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &ProviderError{Provider: "gemini", Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &ProviderError{Provider: "gemini", Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
