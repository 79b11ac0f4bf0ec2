// Package types provides type definitions for structured data used throughout the job-platform system.
package types

// NotFound is the sentinel value for personal-info fields that could not be
// extracted. Records are always fully populated so downstream consumers never
// deal with missing keys.
const NotFound = "Not found"

// PersonalInfo holds candidate attributes extracted from resume text.
type PersonalInfo struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Skills          []string `json:"skills"`
	ExperienceYears string   `json:"experience_years"`
	Education       string   `json:"education"`
	Location        string   `json:"location"`
}

// NewPersonalInfo returns a record with every field set to its sentinel.
func NewPersonalInfo() PersonalInfo {
	return PersonalInfo{
		Name:            NotFound,
		Email:           NotFound,
		Phone:           NotFound,
		Skills:          []string{},
		ExperienceYears: NotFound,
		Education:       NotFound,
		Location:        NotFound,
	}
}

// JobListing represents a single job record in API responses. The field
// vocabulary matches what the frontend consumes regardless of which provider
// (or fallback tier) produced the listing.
type JobListing struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	JobType         string   `json:"job_type"`
	ExperienceLevel string   `json:"experience_level"`
	SalaryMin       int      `json:"salary_min"`
	SalaryMax       int      `json:"salary_max"`
	Description     string   `json:"description"`
	SkillsRequired  []string `json:"skills_required"`
	PostedDate      string   `json:"posted_date"`
	Source          string   `json:"source"`
	IsRemote        bool     `json:"is_remote"`
	ApplyURL        string   `json:"apply_url,omitempty"`
}

// Experience-level bands. Classification output is always one of these.
const (
	BandFreshGraduate = "Fresh Graduate"
	BandJunior        = "0-2 years"
	BandMid           = "2-5 years"
	BandSenior        = "5+ years"
)

// ExperienceBands lists the closed set of classification bands.
var ExperienceBands = []string{BandFreshGraduate, BandJunior, BandMid, BandSenior}

// Provenance tags identifying which fallback tier produced a result.
const (
	SourcePerplexity     = "perplexity"
	SourceGemini         = "gemini"
	SourceCombined       = "perplexity+gemini"
	SourceStaticFallback = "static-fallback"
	SourceAPI            = "api"
	SourceLinkedIn       = "linkedin"
)
