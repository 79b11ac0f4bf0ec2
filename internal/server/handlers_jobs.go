package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/job-platform/internal/jobs"
)

// handleJobsList returns the filtered fixture listings. The response is a
// bare array, which is what the frontend job board consumes.
func (s *Server) handleJobsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filtered := jobs.List(jobs.Filter{
		Search:          q.Get("search"),
		Location:        q.Get("location"),
		JobType:         q.Get("job_type"),
		ExperienceLevel: q.Get("experience_level"),
	})
	s.jsonResponse(w, http.StatusOK, filtered)
}

// handleJobDetail returns a single fixture listing.
func (s *Server) handleJobDetail(w http.ResponseWriter, r *http.Request) {
	job, err := jobs.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.successResponse(w, map[string]any{"job": job})
}

type applyRequest struct {
	CoverLetter string `json:"cover_letter"`
	ResumeID    string `json:"resume_id"`
}

// handleJobApply records a simulated application.
func (s *Server) handleJobApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if r.Body != nil {
		// An empty or missing body is fine; both fields are optional.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	application, err := jobs.Apply(r.PathValue("id"), req.CoverLetter, req.ResumeID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.successResponse(w, map[string]any{
		"message":          "Successfully applied to job " + application.JobID,
		"application_id":   application.ID,
		"application_data": application,
	})
}

// handleJobApplications returns the sample application history.
func (s *Server) handleJobApplications(w http.ResponseWriter, _ *http.Request) {
	applications := jobs.Applications()
	s.successResponse(w, map[string]any{
		"applications": applications,
		"total":        len(applications),
	})
}
