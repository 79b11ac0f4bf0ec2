// Package catalog synthesizes the static job-listing catalogue used when no
// AI provider is usable. The catalogue is a fixed set of archetypal roles;
// titles and salary bands are parameterized by the candidate's experience
// level so the degraded result stays plausible.
package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-platform/internal/types"
)

// Size is the number of listings in a synthesized catalogue.
const Size = 20

// archetype is one representative role. Entry-level bands swap in entryTitle
// and scale the base salary band down.
type archetype struct {
	title      string
	entryTitle string
	company    string
	location   string
	jobType    string
	summary    string
	skills     []string
}

var archetypes = []archetype{
	{"Software Engineer", "Junior Software Engineer", "TechCorp Solutions", "San Francisco, CA", "Full-time",
		"Build and maintain backend services powering consumer products.", []string{"Python", "Go", "SQL", "Git"}},
	{"Frontend Developer", "Junior Frontend Developer", "StartupXYZ", "Remote", "Full-time",
		"Develop responsive web interfaces with a modern component framework.", []string{"React", "TypeScript", "CSS", "HTML"}},
	{"Backend Developer", "Associate Backend Developer", "CloudNine Systems", "Seattle, WA", "Full-time",
		"Design APIs and data pipelines for a high-traffic platform.", []string{"Go", "PostgreSQL", "Redis", "Docker"}},
	{"Full Stack Developer", "Graduate Full Stack Developer", "Innovation Labs", "Austin, TX", "Full-time",
		"Ship features across the stack from database to browser.", []string{"JavaScript", "Node.js", "React", "MongoDB"}},
	{"Data Scientist", "Junior Data Scientist", "AI Innovations", "New York, NY", "Full-time",
		"Build predictive models and communicate findings to stakeholders.", []string{"Python", "Machine Learning", "SQL", "Statistics"}},
	{"Data Analyst", "Graduate Data Analyst", "Insight Analytics", "Chicago, IL", "Full-time",
		"Turn raw business data into dashboards and recommendations.", []string{"SQL", "Excel", "Tableau", "Python"}},
	{"DevOps Engineer", "Junior DevOps Engineer", "ScaleUp Inc", "Remote", "Full-time",
		"Automate infrastructure, deployments, and monitoring.", []string{"AWS", "Docker", "Kubernetes", "Terraform"}},
	{"Machine Learning Engineer", "Associate ML Engineer", "DeepMetrics", "Boston, MA", "Full-time",
		"Productionize machine learning models at scale.", []string{"Python", "TensorFlow", "MLOps", "SQL"}},
	{"Mobile Developer", "Junior Mobile Developer", "Appify", "Los Angeles, CA", "Full-time",
		"Build and ship native mobile applications.", []string{"Swift", "Kotlin", "REST APIs", "Git"}},
	{"QA Engineer", "Graduate QA Engineer", "QualityFirst Software", "Denver, CO", "Full-time",
		"Own automated test coverage across web and API surfaces.", []string{"Selenium", "Python", "CI/CD", "Test Planning"}},
	{"Product Manager", "Associate Product Manager", "Enterprise Corp", "San Jose, CA", "Full-time",
		"Drive product strategy and coordinate cross-functional delivery.", []string{"Product Management", "Agile", "Analytics", "Communication"}},
	{"Cloud Engineer", "Junior Cloud Engineer", "SkyWard Cloud", "Remote", "Full-time",
		"Design and operate cloud infrastructure for enterprise clients.", []string{"AWS", "Azure", "Networking", "Python"}},
	{"Security Engineer", "Associate Security Engineer", "SafeHarbor Security", "Washington, DC", "Full-time",
		"Harden systems and respond to security findings.", []string{"Security", "Linux", "Python", "Networking"}},
	{"Database Administrator", "Junior Database Administrator", "DataVault Inc", "Dallas, TX", "Full-time",
		"Operate and tune relational database clusters.", []string{"PostgreSQL", "MySQL", "Backups", "Performance Tuning"}},
	{"Site Reliability Engineer", "Junior Site Reliability Engineer", "AlwaysOn Services", "Remote", "Full-time",
		"Keep large distributed systems fast and available.", []string{"Go", "Kubernetes", "Observability", "Incident Response"}},
	{"Business Analyst", "Graduate Business Analyst", "Strategy Partners", "Atlanta, GA", "Full-time",
		"Bridge business requirements and engineering delivery.", []string{"Requirements Analysis", "SQL", "Documentation", "Stakeholder Management"}},
	{"UI/UX Designer", "Junior UI/UX Designer", "PixelCraft Studio", "Portland, OR", "Full-time",
		"Design intuitive interfaces and run usability studies.", []string{"Figma", "Prototyping", "User Research", "Design Systems"}},
	{"Systems Engineer", "Graduate Systems Engineer", "CoreInfra Technologies", "Phoenix, AZ", "Full-time",
		"Maintain server fleets and internal platform tooling.", []string{"Linux", "Bash", "Ansible", "Monitoring"}},
	{"Technical Writer", "Junior Technical Writer", "DocuTech", "Remote", "Contract",
		"Produce developer documentation and API references.", []string{"Technical Writing", "Markdown", "API Documentation", "Editing"}},
	{"Support Engineer", "Graduate Support Engineer", "HelpDesk Heroes", "Miami, FL", "Full-time",
		"Diagnose customer-reported issues and escalate defects.", []string{"Troubleshooting", "SQL", "Customer Communication", "Linux"}},
}

// salaryBand bounds the synthesized salary range for one experience band.
type salaryBand struct {
	min, max int
	factor   float64
}

var salaryBands = map[string]salaryBand{
	types.BandFreshGraduate: {55000, 140000, 0.60},
	types.BandJunior:        {65000, 160000, 0.75},
	types.BandMid:           {85000, 190000, 1.00},
	types.BandSenior:        {110000, 230000, 1.30},
}

// Base salary band for a mid-level archetype before scaling. Per-role spread
// comes from the archetype's position in the catalogue.
const (
	baseSalaryMin = 95000
	baseSalaryMax = 145000
	roleSpread    = 2500
)

// Synthesize returns the full static catalogue scaled to the given experience
// band. Unknown bands are treated as Fresh Graduate, the safest degradation.
// Every listing carries the static-fallback provenance tag.
func Synthesize(band string) []types.JobListing {
	sb, ok := salaryBands[band]
	if !ok {
		band = types.BandFreshGraduate
		sb = salaryBands[band]
	}

	listings := make([]types.JobListing, 0, len(archetypes))
	for i, a := range archetypes {
		min := clamp(int(float64(baseSalaryMin+i*roleSpread)*sb.factor), sb.min, sb.max)
		max := clamp(int(float64(baseSalaryMax+i*roleSpread)*sb.factor), sb.min, sb.max)
		if max <= min {
			max = min + 10000
			if max > sb.max {
				max = sb.max
			}
		}

		listings = append(listings, types.JobListing{
			ID:              uuid.New().String(),
			Title:           titleFor(a, band),
			Company:         a.company,
			Location:        a.location,
			JobType:         a.jobType,
			ExperienceLevel: band,
			SalaryMin:       min,
			SalaryMax:       max,
			Description:     a.summary,
			SkillsRequired:  append([]string(nil), a.skills...),
			PostedDate:      time.Now().AddDate(0, 0, -(i%10 + 1)).Format("2006-01-02"),
			Source:          types.SourceStaticFallback,
			IsRemote:        strings.Contains(strings.ToLower(a.location), "remote"),
		})
	}
	return listings
}

// titleFor picks the entry-level title vocabulary for the two junior bands.
func titleFor(a archetype, band string) string {
	if IsEntryLevel(band) {
		return a.entryTitle
	}
	return a.title
}

// IsEntryLevel reports whether a band selects the entry-level title set.
func IsEntryLevel(band string) bool {
	return band == types.BandFreshGraduate || band == types.BandJunior
}

var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*(?:years?|yrs?)`)

// Classify normalizes free-form classification text onto the closed band set.
// Providers answer with prose often enough that substring matching is the
// only reliable mapping. Unrecognizable text maps to Fresh Graduate.
func Classify(raw string) string {
	text := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case strings.Contains(text, "fresh"), strings.Contains(text, "graduate"),
		strings.Contains(text, "entry"), strings.Contains(text, "intern"):
		return types.BandFreshGraduate
	case strings.Contains(text, "0-2"), strings.Contains(text, "junior"):
		return types.BandJunior
	case strings.Contains(text, "2-5"), strings.Contains(text, "mid"):
		return types.BandMid
	case strings.Contains(text, "5+"), strings.Contains(text, "senior"),
		strings.Contains(text, "lead"), strings.Contains(text, "principal"):
		return types.BandSenior
	}

	// Prose like "3 years" or "7+ yrs of experience" carries a usable count.
	if m := yearsPattern.FindStringSubmatch(text); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil {
			switch {
			case years < 1:
				return types.BandFreshGraduate
			case years <= 2:
				return types.BandJunior
			case years <= 5:
				return types.BandMid
			default:
				return types.BandSenior
			}
		}
	}

	return types.BandFreshGraduate
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
