package parsing

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-platform/internal/llm"
	"github.com/jonathan/job-platform/internal/schemas"
	"github.com/jonathan/job-platform/internal/types"
)

// listingArrayKeys are tried in order when the provider wraps its listing
// array inside an object instead of returning a bare array.
var listingArrayKeys = []string{"jobs", "job_listings", "listings", "matches", "results"}

// keyPreferences maps each canonical listing field to the provider key names
// that may carry it, in priority order. Providers are inconsistent about
// naming; the first present, non-empty candidate wins.
var keyPreferences = map[string][]string{
	"title":            {"title", "job_title", "position", "role"},
	"company":          {"company", "company_name", "employer", "organization"},
	"location":         {"location", "job_location", "city"},
	"job_type":         {"job_type", "type", "employment_type"},
	"experience_level": {"experience_level", "level", "seniority"},
	"salary_min":       {"salary_min", "min_salary", "salary_from"},
	"salary_max":       {"salary_max", "max_salary", "salary_to"},
	"description":      {"description", "job_description", "summary"},
	"skills_required":  {"skills_required", "skills", "required_skills", "requirements"},
	"posted_date":      {"posted_date", "date_posted", "posted", "date"},
	"apply_url":        {"apply_url", "url", "link", "linkedin_url", "application_url"},
}

// DefaultListingTitle is used when no title candidate is present.
const DefaultListingTitle = "Software Developer"

// ParseJobListings recovers an ordered list of job listings from a provider
// response. source becomes the provenance tag on every record. An empty
// slice (never an error) signals the caller to fall back to the next tier.
func ParseJobListings(response, source string) []types.JobListing {
	records, ok := decodeListingArray(response)
	if !ok {
		return nil
	}

	listings := make([]types.JobListing, 0, len(records))
	for i, rec := range records {
		listings = append(listings, ReconcileListing(rec, source, i))
	}

	if encoded, err := json.Marshal(listings); err == nil {
		if verr := schemas.ValidateJobListings(string(encoded)); verr != nil {
			// Reconciliation guarantees the canonical shape; a failure here
			// means the schema and the type definition have drifted.
			log.Printf("[parsing] reconciled listings failed schema validation: %v", verr)
		}
	}

	return listings
}

// decodeListingArray finds and decodes the listing array in free-form text.
func decodeListingArray(response string) ([]map[string]any, bool) {
	cleaned := llm.CleanJSONBlock(response)

	if block, ok := ExtractJSONArray(cleaned); ok {
		if records, ok := unmarshalRecords(block); ok {
			return records, true
		}
	}

	// The array may live under a wrapper key like {"jobs": [...]}.
	block, ok := ExtractJSONBlock(cleaned)
	if !ok {
		return nil, false
	}
	var wrapper map[string]any
	if err := json.Unmarshal([]byte(block), &wrapper); err != nil {
		return nil, false
	}
	for _, key := range listingArrayKeys {
		items, ok := wrapper[key].([]any)
		if !ok {
			continue
		}
		records := make([]map[string]any, 0, len(items))
		for _, item := range items {
			if rec, ok := item.(map[string]any); ok {
				records = append(records, rec)
			}
		}
		if len(records) > 0 {
			return records, true
		}
	}
	return nil, false
}

func unmarshalRecords(block string) ([]map[string]any, bool) {
	var items []any
	if err := json.Unmarshal([]byte(block), &items); err != nil {
		return nil, false
	}
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records, len(records) > 0
}

// ReconcileListing maps a raw provider record onto the canonical JobListing
// vocabulary using the key preference table. Missing fields get defaults; a
// unique id and a plausible recent posted date are synthesized when absent.
// seq staggers synthesized dates so a batch does not share one timestamp.
func ReconcileListing(raw map[string]any, source string, seq int) types.JobListing {
	listing := types.JobListing{
		ID:              coalesceString(raw, "id"),
		Title:           coalesceString(raw, "title"),
		Company:         coalesceString(raw, "company"),
		Location:        coalesceString(raw, "location"),
		JobType:         coalesceString(raw, "job_type"),
		ExperienceLevel: coalesceString(raw, "experience_level"),
		SalaryMin:       coalesceInt(raw, "salary_min"),
		SalaryMax:       coalesceInt(raw, "salary_max"),
		Description:     coalesceString(raw, "description"),
		SkillsRequired:  coalesceStringList(raw, "skills_required"),
		PostedDate:      coalesceString(raw, "posted_date"),
		ApplyURL:        coalesceString(raw, "apply_url"),
		Source:          source,
	}

	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	if listing.Title == "" {
		listing.Title = DefaultListingTitle
	}
	if listing.Company == "" {
		listing.Company = "Confidential Company"
	}
	if listing.JobType == "" {
		listing.JobType = "Full-time"
	}
	if listing.SkillsRequired == nil {
		listing.SkillsRequired = []string{}
	}
	if listing.PostedDate == "" {
		listing.PostedDate = recentDate(seq)
	}
	listing.IsRemote = IsRemote(listing.Location, listing.JobType)

	return listing
}

// IsRemote derives the remote flag from location and job-type text.
func IsRemote(location, jobType string) bool {
	return strings.Contains(strings.ToLower(location), "remote") ||
		strings.Contains(strings.ToLower(jobType), "remote")
}

// recentDate returns an ISO date a few days in the past, staggered by seq.
func recentDate(seq int) string {
	return time.Now().AddDate(0, 0, -(seq%14 + 1)).Format("2006-01-02")
}

// coalesceString resolves a canonical field from the first present candidate
// key carrying a non-empty string (or number, formatted as text).
func coalesceString(raw map[string]any, field string) string {
	keys, ok := keyPreferences[field]
	if !ok {
		keys = []string{field}
	}
	for _, key := range keys {
		switch v := raw[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return formatNumber(v)
		}
	}
	return ""
}

// coalesceInt resolves a numeric field, tolerating string-typed numbers with
// currency symbols or thousands separators.
func coalesceInt(raw map[string]any, field string) int {
	keys, ok := keyPreferences[field]
	if !ok {
		keys = []string{field}
	}
	for _, key := range keys {
		switch v := raw[key].(type) {
		case float64:
			return int(v)
		case string:
			cleaned := strings.Map(func(r rune) rune {
				if r >= '0' && r <= '9' {
					return r
				}
				return -1
			}, v)
			if n, err := strconv.Atoi(cleaned); err == nil && cleaned != "" {
				return n
			}
		}
	}
	return 0
}

// coalesceStringList resolves a list field, splitting comma-separated strings.
func coalesceStringList(raw map[string]any, field string) []string {
	keys, ok := keyPreferences[field]
	if !ok {
		keys = []string{field}
	}
	for _, key := range keys {
		switch v := raw[key].(type) {
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					if s = strings.TrimSpace(s); s != "" {
						out = append(out, s)
					}
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			if out := SplitSkills(v); len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

// formatNumber renders a JSON number without a trailing ".000000".
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
