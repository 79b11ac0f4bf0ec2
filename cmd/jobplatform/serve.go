package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-platform/internal/config"
	"github.com/jonathan/job-platform/internal/llm"
	"github.com/jonathan/job-platform/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the resume upload, AI orchestration, job board, and auth endpoints. Missing provider credentials are not fatal; affected operations degrade through their fallback tiers.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	aiCfg := config.NewAIConfig()
	srvCfg := config.NewServerConfig()
	if servePort > 0 {
		srvCfg.Port = servePort
	}

	gemini, err := llm.NewGeminiClient(cmd.Context(), aiCfg.GeminiAPIKey, aiCfg.GeminiModel)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	perplexity := llm.NewPerplexityClient(aiCfg.PerplexityAPIKey, aiCfg.PerplexityModel)

	srv, err := server.New(server.Config{Port: srvCfg.Port}, gemini, perplexity)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
