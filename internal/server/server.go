// Package server provides the HTTP REST API for the job platform.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/job-platform/internal/config"
	"github.com/jonathan/job-platform/internal/llm"
	"github.com/jonathan/job-platform/internal/pipeline"
)

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	orchestrator *pipeline.Orchestrator
	gemini       llm.Client
	perplexity   llm.Client
	userService  *UserService
	jwtService   *JWTService
	authHandler  *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port int
}

// New creates a new server instance over the two provider clients.
func New(cfg Config, gemini, perplexity llm.Client) (*Server, error) {
	s := &Server{
		orchestrator: pipeline.New(perplexity, gemini),
		gemini:       gemini,
		perplexity:   perplexity,
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	mux := http.NewServeMux()

	// Status
	mux.HandleFunc("GET /api/status/", s.handleStatus)
	mux.HandleFunc("GET /api/ai/status/", s.handleAIStatus)

	// Resume upload and extraction
	mux.HandleFunc("POST /api/upload-resume/", s.handleUploadResume)
	mux.HandleFunc("POST /api/resumes/upload/", s.handleUploadResume)
	mux.HandleFunc("POST /api/resumes/bulk-upload/", s.handleBulkUpload)

	// AI endpoints
	mux.HandleFunc("POST /api/analyze-resume/", s.handleAnalyzeResume)
	mux.HandleFunc("POST /api/resumes/analyze/", s.handleAnalyzeResume)
	mux.HandleFunc("POST /api/ai/analyze-resume/", s.handleAnalyzeResume)
	mux.HandleFunc("POST /api/ai/match-jobs/", s.handleMatchJobs)
	mux.HandleFunc("POST /api/ai/career-advice/", s.handleCareerAdvice)
	mux.HandleFunc("POST /api/ai/research-market/", s.handleMarketResearch)
	mux.HandleFunc("POST /api/ai/research-company/", s.handleCompanyResearch)
	mux.HandleFunc("POST /api/ai/collect-linkedin-jobs/", s.handleCollectJobs)
	mux.HandleFunc("POST /api/ai/extract-personal-info/", s.handleExtractPersonalInfo)

	// Job board
	mux.HandleFunc("GET /api/jobs/", s.handleJobsList)
	mux.HandleFunc("GET /api/search-jobs/", s.handleJobsList)
	mux.HandleFunc("GET /api/jobs/applications/", s.handleJobApplications)
	mux.HandleFunc("GET /api/jobs/{id}/", s.handleJobDetail)
	mux.HandleFunc("POST /api/jobs/{id}/apply/", s.handleJobApply)

	// Auth
	mux.HandleFunc("POST /api/auth/register/", s.authHandler.Register)
	mux.HandleFunc("POST /api/auth/login/", s.authHandler.Login)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // provider calls can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	_ = s.gemini.Close()
	_ = s.perplexity.Close()
	log.Println("Server stopped")
	return nil
}

// Handler exposes the configured handler chain. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// successResponse writes the standard success envelope with extra payload keys.
func (s *Server) successResponse(w http.ResponseWriter, payload map[string]any) {
	body := map[string]any{"status": "success"}
	for k, v := range payload {
		body[k] = v
	}
	s.jsonResponse(w, http.StatusOK, body)
}

// errorResponse writes the standard error envelope
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{
		"status":  "error",
		"message": message,
	})
}

// handleStatus reports that the API is up.
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.successResponse(w, map[string]any{
		"message": "Job Platform API is running",
		"version": "1.0.0",
	})
}

// handleAIStatus reports provider availability and the AI operations served.
func (s *Server) handleAIStatus(w http.ResponseWriter, _ *http.Request) {
	s.successResponse(w, map[string]any{
		"gemini_configured":     s.gemini.Configured(),
		"perplexity_configured": s.perplexity.Configured(),
		"endpoints": []string{
			"analyze-resume",
			"match-jobs",
			"career-advice",
			"research-market",
			"research-company",
			"collect-linkedin-jobs",
			"extract-personal-info",
		},
	})
}
