package parsing

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/jonathan/job-platform/internal/llm"
	"github.com/jonathan/job-platform/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	// phonePattern tolerates an optional country code and common separators.
	// Capture groups are concatenated into a bare digit string.
	phonePattern = regexp.MustCompile(`(?:\+?(\d{1,3})[-.\s]?)?\(?(\d{3})\)?[-.\s]?(\d{3})[-.\s]?(\d{4})`)
	digitPattern = regexp.MustCompile(`\d`)
)

// ParsePersonalInfo recovers a PersonalInfo record from a provider response.
// It tries structured JSON first; if the response has no usable JSON, it
// falls back to regex extraction over resumeText. The returned record is
// always fully populated, with "Not found" sentinels for missing fields.
func ParsePersonalInfo(response, resumeText string) types.PersonalInfo {
	if info, ok := parsePersonalInfoJSON(response); ok {
		return info
	}
	return FallbackPersonalInfo(resumeText)
}

// parsePersonalInfoJSON attempts to decode a personal-info object embedded in
// free-form text. Returns false when no decodable object is present.
func parsePersonalInfoJSON(response string) (types.PersonalInfo, bool) {
	block, found := ExtractJSONBlock(llm.CleanJSONBlock(response))
	if !found {
		return types.PersonalInfo{}, false
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(block), &raw); err != nil {
		return types.PersonalInfo{}, false
	}

	info := types.NewPersonalInfo()
	if v := stringField(raw, "name"); v != "" {
		info.Name = v
	}
	if v := stringField(raw, "email"); v != "" {
		info.Email = v
	}
	if v := stringField(raw, "phone"); v != "" {
		info.Phone = v
	}
	if v := stringListField(raw, "skills"); len(v) > 0 {
		info.Skills = v
	}
	if v := stringField(raw, "experience_years"); v != "" {
		info.ExperienceYears = v
	}
	if v := stringField(raw, "education"); v != "" {
		info.Education = v
	}
	if v := stringField(raw, "location"); v != "" {
		info.Location = v
	}

	return info, true
}

// FallbackPersonalInfo extracts what it can from plain resume text using
// regular expressions. Fields that cannot be recovered keep their sentinels.
func FallbackPersonalInfo(text string) types.PersonalInfo {
	info := types.NewPersonalInfo()

	if email := emailPattern.FindString(text); email != "" {
		info.Email = email
	}

	if groups := phonePattern.FindStringSubmatch(text); groups != nil {
		info.Phone = strings.Join(groups[1:], "")
	}

	if name := extractName(text); name != "" {
		info.Name = name
	}

	return info
}

// extractName inspects the first five non-empty lines and accepts the first
// one with four or fewer words and no digit, "@", or parenthesis characters.
// Known limitation: header lines such as "CURRICULUM VITAE" satisfy the rule
// and win over the actual name below them.
func extractName(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if len(strings.Fields(line)) > 4 {
			continue
		}
		if digitPattern.MatchString(line) || strings.ContainsAny(line, "@()") {
			continue
		}
		return line
	}
	return ""
}

// stringField reads a string-typed key, tolerating numeric values.
func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		s := strings.TrimSpace(v)
		if strings.EqualFold(s, types.NotFound) {
			return ""
		}
		return s
	case float64:
		return formatNumber(v)
	default:
		return ""
	}
}

// stringListField reads a list-typed key, coercing a comma-separated string.
func stringListField(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	case string:
		return SplitSkills(v)
	default:
		return nil
	}
}

// SplitSkills converts a comma-separated skill string into a trimmed list.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
