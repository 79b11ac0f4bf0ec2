package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-platform/internal/types"
)

func TestSynthesizeSize(t *testing.T) {
	for _, band := range types.ExperienceBands {
		t.Run(band, func(t *testing.T) {
			listings := Synthesize(band)
			assert.Len(t, listings, Size)
		})
	}
}

func TestSynthesizeFreshGraduateSalaries(t *testing.T) {
	listings := Synthesize(types.BandFreshGraduate)
	require.Len(t, listings, Size)

	for _, l := range listings {
		assert.GreaterOrEqual(t, l.SalaryMin, 55000, "%s salary_min below band", l.Title)
		assert.LessOrEqual(t, l.SalaryMax, 140000, "%s salary_max above band", l.Title)
		assert.Less(t, l.SalaryMin, l.SalaryMax, "%s salary range inverted", l.Title)
	}
}

func TestSynthesizeEntryLevelTitles(t *testing.T) {
	entry := Synthesize(types.BandFreshGraduate)
	senior := Synthesize(types.BandSenior)

	entryTitles := 0
	for _, l := range entry {
		lower := strings.ToLower(l.Title)
		if strings.Contains(lower, "junior") || strings.Contains(lower, "graduate") ||
			strings.Contains(lower, "associate") {
			entryTitles++
		}
	}
	assert.Equal(t, Size, entryTitles, "every fresh-graduate listing uses the entry-level vocabulary")

	for _, l := range senior {
		lower := strings.ToLower(l.Title)
		assert.NotContains(t, lower, "junior")
		assert.NotContains(t, lower, "graduate")
	}
}

func TestSynthesizeListingShape(t *testing.T) {
	listings := Synthesize(types.BandMid)

	seen := make(map[string]bool)
	for _, l := range listings {
		assert.NotEmpty(t, l.ID)
		assert.False(t, seen[l.ID], "duplicate id in catalogue")
		seen[l.ID] = true

		assert.NotEmpty(t, l.Title)
		assert.NotEmpty(t, l.Company)
		assert.NotEmpty(t, l.Description)
		assert.NotEmpty(t, l.SkillsRequired)
		assert.NotEmpty(t, l.PostedDate)
		assert.Equal(t, types.BandMid, l.ExperienceLevel)
		assert.Equal(t, types.SourceStaticFallback, l.Source)
	}
}

func TestSynthesizeUnknownBandDefaults(t *testing.T) {
	listings := Synthesize("wizard-tier")
	require.Len(t, listings, Size)
	for _, l := range listings {
		assert.Equal(t, types.BandFreshGraduate, l.ExperienceLevel)
	}
}

func TestSynthesizeRemoteFlag(t *testing.T) {
	for _, l := range Synthesize(types.BandMid) {
		expected := strings.Contains(strings.ToLower(l.Location), "remote")
		assert.Equal(t, expected, l.IsRemote, "remote flag mismatch for %s", l.Title)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"exact fresh graduate", "Fresh Graduate", types.BandFreshGraduate},
		{"lowercase fresh", "fresh graduate", types.BandFreshGraduate},
		{"entry level prose", "This is an entry-level candidate.", types.BandFreshGraduate},
		{"exact junior band", "0-2 years", types.BandJunior},
		{"junior keyword", "Junior developer", types.BandJunior},
		{"exact mid band", "2-5 years", types.BandMid},
		{"mid keyword", "Mid-level engineer", types.BandMid},
		{"exact senior band", "5+ years", types.BandSenior},
		{"senior keyword", "Senior engineer with a strong background", types.BandSenior},
		{"numeric two years", "2 years", types.BandJunior},
		{"numeric three years", "3 years of experience", types.BandMid},
		{"numeric seven plus years", "7+ years of experience", types.BandSenior},
		{"zero years", "0 years", types.BandFreshGraduate},
		{"unrecognizable", "hard to say", types.BandFreshGraduate},
		{"empty", "", types.BandFreshGraduate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.input)
			assert.Equal(t, tt.expected, result)
			assert.Contains(t, types.ExperienceBands, result)
		})
	}
}

func TestIsEntryLevel(t *testing.T) {
	assert.True(t, IsEntryLevel(types.BandFreshGraduate))
	assert.True(t, IsEntryLevel(types.BandJunior))
	assert.False(t, IsEntryLevel(types.BandMid))
	assert.False(t, IsEntryLevel(types.BandSenior))
}
