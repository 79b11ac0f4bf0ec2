package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeResumeRequest is the request body for the AI resume analysis endpoints.
type AnalyzeResumeRequest struct {
	ResumeText   string `json:"resume_text" validate:"required,min=1"`
	AnalysisType string `json:"analysis_type,omitempty"`
	TargetRole   string `json:"target_role,omitempty"`
}

// MatchJobsRequest is the request body for AI job matching.
type MatchJobsRequest struct {
	ResumeText    string            `json:"resume_text" validate:"required,min=1"`
	Preferences   map[string]string `json:"preferences,omitempty"`
	UsePerplexity *bool             `json:"use_perplexity,omitempty"`
	Limit         int               `json:"limit,omitempty"`
}

// CareerAdviceRequest is the request body for AI career advice.
type CareerAdviceRequest struct {
	ResumeText        string `json:"resume_text" validate:"required,min=1"`
	CareerGoals       string `json:"career_goals,omitempty"`
	CurrentChallenges string `json:"current_challenges,omitempty"`
}

// MarketResearchRequest is the request body for AI market research.
type MarketResearchRequest struct {
	Industry string `json:"industry,omitempty"`
	Location string `json:"location,omitempty"`
	Role     string `json:"role,omitempty"`
}

// CompanyResearchRequest is the request body for AI company research.
type CompanyResearchRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=1"`
	Detailed    bool   `json:"detailed,omitempty"`
}

// CollectJobsRequest is the request body for simulated LinkedIn job collection.
type CollectJobsRequest struct {
	Queries       []string `json:"queries,omitempty"`
	Locations     []string `json:"locations,omitempty"`
	Limit         int      `json:"limit,omitempty"`
	UsePerplexity *bool    `json:"use_perplexity,omitempty"`
}

// ExtractPersonalInfoRequest is the request body for personal-info extraction.
type ExtractPersonalInfoRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=1"`
}

// DefaultAnalysisType is used when the caller omits analysis_type.
const DefaultAnalysisType = "comprehensive"

// DefaultMatchLimit is used when the caller omits the match limit.
const DefaultMatchLimit = 10

var validate = validator.New()

// Validate validates the AnalyzeResumeRequest using the validator.
func (r *AnalyzeResumeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MatchJobsRequest using the validator.
func (r *MatchJobsRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CareerAdviceRequest using the validator.
func (r *CareerAdviceRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CompanyResearchRequest using the validator.
func (r *CompanyResearchRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ExtractPersonalInfoRequest using the validator.
func (r *ExtractPersonalInfoRequest) Validate() error {
	return validate.Struct(r)
}
