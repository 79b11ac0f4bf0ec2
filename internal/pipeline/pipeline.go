// Package pipeline provides the high-level orchestration for the AI
// endpoints: it builds prompts, calls providers in fallback order, parses
// responses, and substitutes synthesized records when no provider is usable.
//
// Listing operations walk a fixed chain: the search-augmented provider is
// tried first (when requested and configured), then the general provider,
// then the static catalogue. Each result carries a provenance tag naming the
// tier that produced it. Single-provider operations (analysis, advice,
// research) have no static tier and surface provider failures to the caller.
package pipeline

import (
	"context"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/job-platform/internal/catalog"
	"github.com/jonathan/job-platform/internal/llm"
	"github.com/jonathan/job-platform/internal/parsing"
	"github.com/jonathan/job-platform/internal/prompts"
	"github.com/jonathan/job-platform/internal/types"
)

// Orchestrator runs the provider fallback chain. Both clients are always
// non-nil; unconfigured clients are skipped via Configured().
type Orchestrator struct {
	augmented llm.Client // search-augmented (Perplexity)
	general   llm.Client // general-purpose (Gemini)
}

// New creates an Orchestrator over the two provider clients.
func New(augmented, general llm.Client) *Orchestrator {
	return &Orchestrator{augmented: augmented, general: general}
}

// ListingResult is a listing operation's outcome: the records plus the
// provenance tag of the tier that produced them.
type ListingResult struct {
	Listings []types.JobListing `json:"jobs"`
	Source   string             `json:"source"`
}

// TextResult is a free-form operation's outcome.
type TextResult struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

// MatchJobs suggests job listings for a resume. The chain classifies the
// candidate's experience band, tries the augmented provider, then the general
// provider with the band-aware generation prompt, then the static catalogue.
// Never fails; the static tier always produces a result.
func (o *Orchestrator) MatchJobs(ctx context.Context, req types.MatchJobsRequest) ListingResult {
	limit := req.Limit
	if limit <= 0 {
		limit = types.DefaultMatchLimit
	}
	band := o.ClassifyExperience(ctx, req.ResumeText)

	var partial string
	if useAugmented(req.UsePerplexity, o.augmented) {
		prompt := prompts.Build(prompts.KindMatchJobs, map[string]string{
			"ResumeText":  req.ResumeText,
			"Preferences": formatPreferences(req.Preferences),
			"Limit":       strconv.Itoa(limit),
		})
		raw, err := o.augmented.GenerateContent(ctx, prompt)
		if err != nil {
			log.Printf("[pipeline] augmented match-jobs failed, falling back: %v", err)
		} else {
			if listings := parsing.ParseJobListings(raw, o.augmented.Name()); len(listings) > 0 {
				return ListingResult{Listings: truncate(listings, limit), Source: o.augmented.Name()}
			}
			// Unparseable output still carries market signal for the next tier.
			partial = raw
		}
	}

	prompt := prompts.Build(prompts.KindGenerateListings, map[string]string{
		"Limit":           strconv.Itoa(limit),
		"ResumeText":      req.ResumeText,
		"Preferences":     formatPreferences(req.Preferences),
		"ExperienceLevel": band,
	})
	prompt = withMarketContext(prompt, partial)

	raw, err := o.general.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("[pipeline] general match-jobs failed, synthesizing: %v", err)
	} else if listings := parsing.ParseJobListings(raw, o.general.Name()); len(listings) > 0 {
		return ListingResult{Listings: truncate(listings, limit), Source: combinedSource(partial, o.general.Name())}
	}

	// The static tier always returns the full catalogue; a degraded result
	// should not also be a short one.
	return ListingResult{
		Listings: catalog.Synthesize(band),
		Source:   types.SourceStaticFallback,
	}
}

// CollectJobListings simulates LinkedIn job collection via prompting. Same
// chain shape as MatchJobs; collected listings carry the "linkedin" record
// source because they describe postings rather than generated suggestions.
func (o *Orchestrator) CollectJobListings(ctx context.Context, req types.CollectJobsRequest) ListingResult {
	limit := req.Limit
	if limit <= 0 {
		limit = types.DefaultMatchLimit
	}
	params := map[string]string{
		"Queries":   strings.Join(req.Queries, ", "),
		"Locations": strings.Join(req.Locations, ", "),
		"Limit":     strconv.Itoa(limit),
	}

	var partial string
	if useAugmented(req.UsePerplexity, o.augmented) {
		prompt := prompts.Build(prompts.KindCollectJobs, params)
		raw, err := o.augmented.GenerateContent(ctx, prompt)
		if err != nil {
			log.Printf("[pipeline] augmented job collection failed, falling back: %v", err)
		} else {
			if listings := parsing.ParseJobListings(raw, types.SourceLinkedIn); len(listings) > 0 {
				return ListingResult{Listings: truncate(listings, limit), Source: o.augmented.Name()}
			}
			partial = raw
		}
	}

	fallbackParams := map[string]string{
		"Queries":   params["Queries"],
		"Locations": params["Locations"],
		"Limit":     params["Limit"],
	}
	if partial != "" {
		fallbackParams["MarketContext"] = "Market context:\n" + partial
	}
	prompt := prompts.Build(prompts.KindCollectJobsFallback, fallbackParams)

	raw, err := o.general.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("[pipeline] general job collection failed, synthesizing: %v", err)
	} else if listings := parsing.ParseJobListings(raw, o.general.Name()); len(listings) > 0 {
		return ListingResult{Listings: truncate(listings, limit), Source: combinedSource(partial, o.general.Name())}
	}

	return ListingResult{
		Listings: catalog.Synthesize(types.BandMid),
		Source:   types.SourceStaticFallback,
	}
}

// useAugmented gates the TryAugmented state: the caller must not have opted
// out, and the augmented provider must hold a real credential.
func useAugmented(requested *bool, client llm.Client) bool {
	if requested != nil && !*requested {
		return false
	}
	return client.Configured()
}

// combinedSource tags results that folded partial augmented output into the
// general tier's prompt.
func combinedSource(partial, generalName string) string {
	if partial != "" {
		return types.SourceCombined
	}
	return generalName
}

// withMarketContext appends partial augmented output to a prompt when present.
func withMarketContext(prompt, partial string) string {
	if partial == "" {
		return prompt
	}
	return prompt + "\n\nMarket context from a live search:\n" + partial
}

func truncate(listings []types.JobListing, limit int) []types.JobListing {
	if limit > 0 && len(listings) > limit {
		return listings[:limit]
	}
	return listings
}

// formatPreferences renders an opaque preference map as stable "key: value"
// lines for prompt inclusion.
func formatPreferences(prefs map[string]string) string {
	if len(prefs) == 0 {
		return "None"
	}
	keys := make([]string, 0, len(prefs))
	for k := range prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(prefs[k])
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
