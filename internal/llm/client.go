// Package llm provides clients for the AI providers consumed by the
// orchestration pipeline: a general-purpose generation provider (Gemini) and
// a web-search-augmented provider (Perplexity).
package llm

import "context"

// Client is an abstraction over LLM providers.
type Client interface {
	// Name returns the provenance tag for this provider ("gemini", "perplexity").
	Name() string
	// Configured reports whether a usable credential is present. Calls to
	// GenerateContent on an unconfigured client fail with *NotConfiguredError.
	Configured() bool
	// GenerateContent sends a prompt and returns the raw response text.
	// No retries happen at this layer; fallback is the pipeline's job.
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}
