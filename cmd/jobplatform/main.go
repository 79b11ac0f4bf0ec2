// Package main provides the entry point for the Job Platform HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobplatform",
	Short: "Job Platform HTTP API Server",
	Long:  "Job Platform accepts uploaded resumes, extracts their text, and orchestrates AI providers for analysis, job matching, career advice, and market research via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
