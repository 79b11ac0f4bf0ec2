// Package config provides configuration loading for the server. Everything
// comes from environment variables read once at process start; the resulting
// structs are passed by reference, never consulted as ambient globals.
package config

import (
	"os"
	"strconv"
)

// AIConfig holds provider credentials and model overrides.
type AIConfig struct {
	GeminiAPIKey     string
	GeminiModel      string
	PerplexityAPIKey string
	PerplexityModel  string
}

// NewAIConfig reads provider configuration from the environment. Missing
// credentials are not an error; the affected provider is simply unavailable
// and the pipeline degrades through its fallback tiers.
func NewAIConfig() *AIConfig {
	return &AIConfig{
		GeminiAPIKey:     os.Getenv("GOOGLE_GEMINI_API_KEY"),
		GeminiModel:      os.Getenv("GEMINI_MODEL"),
		PerplexityAPIKey: os.Getenv("PERPLEXITY_API_KEY"),
		PerplexityModel:  os.Getenv("PERPLEXITY_MODEL"),
	}
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
}

// NewServerConfig reads server settings from the environment, defaulting the
// port to 8000.
func NewServerConfig() *ServerConfig {
	port := 8000
	if s := os.Getenv("PORT"); s != "" {
		if p, err := strconv.Atoi(s); err == nil && p > 0 {
			port = p
		}
	}
	return &ServerConfig{Port: port}
}
