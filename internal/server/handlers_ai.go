package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/job-platform/internal/types"
)

// decodeAndValidate decodes a JSON request body into req and validates it.
// Writes the error response itself and reports whether the handler should
// continue.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{ Validate() error }) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

// handleAnalyzeResume runs an AI resume analysis.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeResumeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.orchestrator.AnalyzeResume(r.Context(), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.successResponse(w, map[string]any{
		"analysis": result.Content,
		"source":   result.Source,
	})
}

// handleMatchJobs suggests jobs for a resume via the fallback chain. Always
// succeeds; the static catalogue is the last tier.
func (s *Server) handleMatchJobs(w http.ResponseWriter, r *http.Request) {
	var req types.MatchJobsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := s.orchestrator.MatchJobs(r.Context(), req)
	s.successResponse(w, map[string]any{
		"matches": result.Listings,
		"total":   len(result.Listings),
		"source":  result.Source,
	})
}

// handleCareerAdvice generates AI career guidance.
func (s *Server) handleCareerAdvice(w http.ResponseWriter, r *http.Request) {
	var req types.CareerAdviceRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.orchestrator.CareerAdvice(r.Context(), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.successResponse(w, map[string]any{
		"advice": result.Content,
		"source": result.Source,
	})
}

// handleMarketResearch researches the job market, search-augmented first.
func (s *Server) handleMarketResearch(w http.ResponseWriter, r *http.Request) {
	var req types.MarketResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.orchestrator.MarketResearch(r.Context(), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.successResponse(w, map[string]any{
		"research": result.Content,
		"source":   result.Source,
	})
}

// handleCompanyResearch researches a company.
func (s *Server) handleCompanyResearch(w http.ResponseWriter, r *http.Request) {
	var req types.CompanyResearchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.orchestrator.CompanyResearch(r.Context(), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.successResponse(w, map[string]any{
		"company_research": result.Content,
		"source":           result.Source,
	})
}

// handleCollectJobs simulates LinkedIn job collection via the fallback chain.
func (s *Server) handleCollectJobs(w http.ResponseWriter, r *http.Request) {
	var req types.CollectJobsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := s.orchestrator.CollectJobListings(r.Context(), req)
	s.successResponse(w, map[string]any{
		"jobs":   result.Listings,
		"total":  len(result.Listings),
		"source": result.Source,
	})
}

// handleExtractPersonalInfo extracts candidate attributes from resume text.
func (s *Server) handleExtractPersonalInfo(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractPersonalInfoRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := s.orchestrator.ExtractPersonalInfo(r.Context(), req.ResumeText)
	s.successResponse(w, map[string]any{
		"personal_info": result.Info,
		"source":        result.Source,
	})
}
