package pipeline

import (
	"context"
	"log"
	"strconv"

	"github.com/jonathan/job-platform/internal/catalog"
	"github.com/jonathan/job-platform/internal/parsing"
	"github.com/jonathan/job-platform/internal/prompts"
	"github.com/jonathan/job-platform/internal/types"
)

// AnalyzeResume runs a general-provider analysis of resume text. This is a
// single-provider operation: there is no useful static substitute for an
// analysis, so provider failures surface to the caller.
func (o *Orchestrator) AnalyzeResume(ctx context.Context, req types.AnalyzeResumeRequest) (TextResult, error) {
	analysisType := req.AnalysisType
	if analysisType == "" {
		analysisType = types.DefaultAnalysisType
	}
	prompt := prompts.Build(prompts.KindAnalyzeResume, map[string]string{
		"AnalysisType": analysisType,
		"TargetRole":   req.TargetRole,
		"ResumeText":   req.ResumeText,
	})

	raw, err := o.general.GenerateContent(ctx, prompt)
	if err != nil {
		return TextResult{}, &NoProviderError{Operation: "analyze-resume", Cause: err}
	}
	return TextResult{Content: raw, Source: o.general.Name()}, nil
}

// CareerAdvice generates career guidance from the general provider.
func (o *Orchestrator) CareerAdvice(ctx context.Context, req types.CareerAdviceRequest) (TextResult, error) {
	prompt := prompts.Build(prompts.KindCareerAdvice, map[string]string{
		"ResumeText":        req.ResumeText,
		"CareerGoals":       req.CareerGoals,
		"CurrentChallenges": req.CurrentChallenges,
	})

	raw, err := o.general.GenerateContent(ctx, prompt)
	if err != nil {
		return TextResult{}, &NoProviderError{Operation: "career-advice", Cause: err}
	}
	return TextResult{Content: raw, Source: o.general.Name()}, nil
}

// MarketResearch prefers the search-augmented provider for current market
// data and falls back to the general provider. Fails only when both do.
func (o *Orchestrator) MarketResearch(ctx context.Context, req types.MarketResearchRequest) (TextResult, error) {
	prompt := prompts.Build(prompts.KindMarketResearch, map[string]string{
		"Industry": req.Industry,
		"Location": req.Location,
		"Role":     req.Role,
	})
	return o.researchWithFallback(ctx, "market-research", prompt)
}

// CompanyResearch researches a company, augmented provider first.
func (o *Orchestrator) CompanyResearch(ctx context.Context, req types.CompanyResearchRequest) (TextResult, error) {
	prompt := prompts.Build(prompts.KindCompanyResearch, map[string]string{
		"CompanyName": req.CompanyName,
		"Detailed":    strconv.FormatBool(req.Detailed),
	})
	return o.researchWithFallback(ctx, "company-research", prompt)
}

func (o *Orchestrator) researchWithFallback(ctx context.Context, operation, prompt string) (TextResult, error) {
	if o.augmented.Configured() {
		raw, err := o.augmented.GenerateContent(ctx, prompt)
		if err == nil {
			return TextResult{Content: raw, Source: o.augmented.Name()}, nil
		}
		log.Printf("[pipeline] augmented %s failed, falling back: %v", operation, err)
	}

	raw, err := o.general.GenerateContent(ctx, prompt)
	if err != nil {
		return TextResult{}, &NoProviderError{Operation: operation, Cause: err}
	}
	return TextResult{Content: raw, Source: o.general.Name()}, nil
}

// ClassifyExperience maps resume text onto the closed experience-band set
// via the general provider. Classification is advisory, so failures degrade
// to the Fresh Graduate band instead of erroring.
func (o *Orchestrator) ClassifyExperience(ctx context.Context, resumeText string) string {
	prompt := prompts.Build(prompts.KindClassifyExperience, map[string]string{
		"ResumeText": resumeText,
	})

	raw, err := o.general.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("[pipeline] experience classification failed, defaulting: %v", err)
		return types.BandFreshGraduate
	}
	return catalog.Classify(raw)
}

// PersonalInfoResult pairs an extraction with its provenance tag.
type PersonalInfoResult struct {
	Info   types.PersonalInfo `json:"personal_info"`
	Source string             `json:"source"`
}

// ExtractPersonalInfo extracts candidate attributes from resume text. The
// general provider is asked for structured JSON; unusable or missing provider
// output degrades to regex extraction over the resume text itself, so the
// result is always a fully populated record.
func (o *Orchestrator) ExtractPersonalInfo(ctx context.Context, resumeText string) PersonalInfoResult {
	prompt := prompts.Build(prompts.KindPersonalInfo, map[string]string{
		"ResumeText": resumeText,
	})

	raw, err := o.general.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("[pipeline] personal-info extraction failed, using regex fallback: %v", err)
		return PersonalInfoResult{
			Info:   parsing.FallbackPersonalInfo(resumeText),
			Source: types.SourceStaticFallback,
		}
	}

	return PersonalInfoResult{
		Info:   parsing.ParsePersonalInfo(raw, resumeText),
		Source: o.general.Name(),
	}
}
