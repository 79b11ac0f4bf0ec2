package prompts

// Kind identifies a prompt template in ai.json.
type Kind string

// Prompt kinds for the AI endpoints.
const (
	KindPersonalInfo        Kind = "extract-personal-info"
	KindAnalyzeResume       Kind = "analyze-resume"
	KindClassifyExperience  Kind = "classify-experience"
	KindMatchJobs           Kind = "match-jobs"
	KindCareerAdvice        Kind = "career-advice"
	KindMarketResearch      Kind = "market-research"
	KindCompanyResearch     Kind = "company-research"
	KindCollectJobs         Kind = "collect-linkedin-jobs"
	KindCollectJobsFallback Kind = "collect-linkedin-jobs-fallback"
	KindGenerateListings    Kind = "generate-job-listings"
)

// Build renders the template for kind with the given parameters. Missing
// optional parameters render as empty strings. Pure function, no I/O beyond
// the embedded template files.
func Build(kind Kind, params map[string]string) string {
	return Format(MustGet("ai.json", string(kind)), params)
}
