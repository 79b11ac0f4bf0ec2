// Package jobs serves the placeholder job board: a fixed in-memory set of
// listings with filtering, detail lookup, and simulated applications. Nothing
// here touches durable storage.
package jobs

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-platform/internal/types"
)

// Filter narrows the listing set. Empty fields match everything. Search is a
// substring match over title, company, and required skills; job type and
// experience level are exact (case-insensitive) matches.
type Filter struct {
	Search          string
	Location        string
	JobType         string
	ExperienceLevel string
}

// Application records a simulated job application.
type Application struct {
	ID          string `json:"id"`
	JobID       string `json:"job_id"`
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	CoverLetter string `json:"cover_letter"`
	ResumeID    string `json:"resume_id"`
	AppliedDate string `json:"applied_date"`
	Status      string `json:"status"`
}

// List returns the fixture listings matching the filter, in fixture order.
func List(f Filter) []types.JobListing {
	out := make([]types.JobListing, 0, len(fixtures))
	for _, job := range fixtures {
		if matches(job, f) {
			out = append(out, job)
		}
	}
	return out
}

// Get returns the fixture listing with the given id.
func Get(id string) (types.JobListing, error) {
	for _, job := range fixtures {
		if job.ID == id {
			return job, nil
		}
	}
	return types.JobListing{}, &NotFoundError{JobID: id}
}

// Apply records a simulated application against a fixture listing.
func Apply(jobID, coverLetter, resumeID string) (Application, error) {
	job, err := Get(jobID)
	if err != nil {
		return Application{}, err
	}
	return Application{
		ID:          fmt.Sprintf("app_%s", uuid.New().String()),
		JobID:       job.ID,
		JobTitle:    job.Title,
		Company:     job.Company,
		CoverLetter: coverLetter,
		ResumeID:    resumeID,
		AppliedDate: time.Now().Format("2006-01-02"),
		Status:      "submitted",
	}, nil
}

// Applications returns the sample application history.
func Applications() []Application {
	return append([]Application(nil), sampleApplications...)
}

func matches(job types.JobListing, f Filter) bool {
	if f.Search != "" && !searchMatch(job, f.Search) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.JobType != "" && !strings.EqualFold(job.JobType, f.JobType) {
		return false
	}
	if f.ExperienceLevel != "" && !strings.EqualFold(job.ExperienceLevel, f.ExperienceLevel) {
		return false
	}
	return true
}

func searchMatch(job types.JobListing, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(job.Title), needle) ||
		strings.Contains(strings.ToLower(job.Company), needle) {
		return true
	}
	for _, skill := range job.SkillsRequired {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}
