package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-platform/internal/types"
)

func TestParsePersonalInfoFromJSON(t *testing.T) {
	tests := []struct {
		name     string
		response string
		validate func(t *testing.T, info types.PersonalInfo)
	}{
		{
			name: "clean json object",
			response: `{"name": "Jane Smith", "email": "jane@example.com", "phone": "555-0100",
				"skills": ["Go", "SQL"], "experience_years": "3", "education": "BSc Computer Science",
				"location": "Berlin, Germany"}`,
			validate: func(t *testing.T, info types.PersonalInfo) {
				assert.Equal(t, "Jane Smith", info.Name)
				assert.Equal(t, "jane@example.com", info.Email)
				assert.Equal(t, []string{"Go", "SQL"}, info.Skills)
				assert.Equal(t, "3", info.ExperienceYears)
				assert.Equal(t, "Berlin, Germany", info.Location)
			},
		},
		{
			name:     "json fenced in markdown with prose",
			response: "Here you go:\n```json\n{\"name\": \"Bob Lee\", \"email\": \"bob@test.io\"}\n```\nAnything else?",
			validate: func(t *testing.T, info types.PersonalInfo) {
				assert.Equal(t, "Bob Lee", info.Name)
				assert.Equal(t, "bob@test.io", info.Email)
				assert.Equal(t, types.NotFound, info.Phone)
			},
		},
		{
			name:     "skills as comma string",
			response: `{"name": "Ann", "skills": "Python, SQL, Git"}`,
			validate: func(t *testing.T, info types.PersonalInfo) {
				assert.Equal(t, []string{"Python", "SQL", "Git"}, info.Skills)
			},
		},
		{
			name:     "provider echoes Not found values",
			response: `{"name": "Not found", "email": "not found", "phone": "Not found"}`,
			validate: func(t *testing.T, info types.PersonalInfo) {
				assert.Equal(t, types.NotFound, info.Name)
				assert.Equal(t, types.NotFound, info.Email)
				assert.Equal(t, types.NotFound, info.Phone)
			},
		},
		{
			name:     "numeric experience years",
			response: `{"name": "Ann", "experience_years": 4}`,
			validate: func(t *testing.T, info types.PersonalInfo) {
				assert.Equal(t, "4", info.ExperienceYears)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParsePersonalInfo(tt.response, "")
			tt.validate(t, info)
		})
	}
}

func TestParsePersonalInfoRegexFallback(t *testing.T) {
	// No JSON in the provider response forces regex extraction over the
	// resume text itself.
	resume := "Contact: john@example.com, call (415) 555-0100 anytime"
	info := ParsePersonalInfo("I'm sorry, I cannot produce structured output.", resume)

	assert.Equal(t, "john@example.com", info.Email)
	assert.Equal(t, "4155550100", info.Phone)
	assert.Equal(t, types.NotFound, info.Name)
	assert.Equal(t, types.NotFound, info.ExperienceYears)
	assert.Equal(t, types.NotFound, info.Education)
	assert.Equal(t, types.NotFound, info.Location)
	assert.Empty(t, info.Skills)
}

func TestFallbackPersonalInfoAlwaysFullyPopulated(t *testing.T) {
	info := FallbackPersonalInfo("")

	assert.Equal(t, types.NotFound, info.Name)
	assert.Equal(t, types.NotFound, info.Email)
	assert.Equal(t, types.NotFound, info.Phone)
	assert.Equal(t, types.NotFound, info.ExperienceYears)
	assert.Equal(t, types.NotFound, info.Education)
	assert.Equal(t, types.NotFound, info.Location)
	assert.NotNil(t, info.Skills)
}

func TestFallbackPersonalInfoNameHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "name on first line",
			text:     "John Doe\nSoftware Engineer with 5 years of experience\njohn@example.com",
			expected: "John Doe",
		},
		{
			name:     "skips lines with digits and at signs",
			text:     "415-555-0100\njane@example.com\nJane Smith\nmore text",
			expected: "Jane Smith",
		},
		{
			name:     "skips long lines",
			text:     "An experienced and motivated professional seeking new opportunities\nJane Smith",
			expected: "Jane Smith",
		},
		{
			name:     "header line wins over the real name below it",
			text:     "CURRICULUM VITAE\nJane Smith",
			expected: "CURRICULUM VITAE",
		},
		{
			name:     "nothing usable in the first five lines",
			text:     "1\n2\n3\n4\n5\nJane Smith",
			expected: types.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := FallbackPersonalInfo(tt.text)
			assert.Equal(t, tt.expected, info.Name)
		})
	}
}

func TestFallbackPhoneNormalization(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"parenthesized area code", "(415) 555-0100", "4155550100"},
		{"dotted separators", "415.555.0100", "4155550100"},
		{"country code", "+1 415 555 0100", "14155550100"},
		{"bare digits", "4155550100", "4155550100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := FallbackPersonalInfo(tt.text)
			assert.Equal(t, tt.expected, info.Phone)
		})
	}
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Python", "SQL", "Git"}, SplitSkills("Python, SQL, Git"))
	assert.Equal(t, []string{"Go"}, SplitSkills("  Go  "))
	assert.Empty(t, SplitSkills(",,"))
	assert.Empty(t, SplitSkills(""))
}
