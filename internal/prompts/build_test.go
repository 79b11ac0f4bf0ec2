package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		expected string
	}{
		{
			name:     "simple substitution",
			template: "Hello {{.Name}}!",
			data:     map[string]string{"Name": "World"},
			expected: "Hello World!",
		},
		{
			name:     "missing key renders empty",
			template: "Role: {{.Role}}, Goals: {{.Goals}}",
			data:     map[string]string{"Role": "Engineer"},
			expected: "Role: Engineer, Goals: ",
		},
		{
			name:     "no placeholders",
			template: "static text",
			data:     map[string]string{"Unused": "x"},
			expected: "static text",
		},
		{
			name:     "repeated placeholder",
			template: "{{.X}} and {{.X}}",
			data:     map[string]string{"X": "y"},
			expected: "y and y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.data))
		})
	}
}

func TestBuildKinds(t *testing.T) {
	kinds := []Kind{
		KindPersonalInfo,
		KindAnalyzeResume,
		KindClassifyExperience,
		KindMatchJobs,
		KindCareerAdvice,
		KindMarketResearch,
		KindCompanyResearch,
		KindCollectJobs,
		KindCollectJobsFallback,
		KindGenerateListings,
	}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			prompt := Build(kind, map[string]string{"ResumeText": "RESUME-MARKER"})
			assert.NotEmpty(t, prompt)
			assert.NotContains(t, prompt, "{{.", "unresolved placeholder left in prompt")
		})
	}
}

func TestBuildPersonalInfoPrompt(t *testing.T) {
	prompt := Build(KindPersonalInfo, map[string]string{"ResumeText": "RESUME-MARKER"})
	assert.Contains(t, prompt, "RESUME-MARKER")
	// The template pins the exact record shape the parser expects.
	for _, field := range []string{"name", "email", "phone", "skills", "experience_years", "education", "location"} {
		assert.Contains(t, prompt, field)
	}
}

func TestBuildClassifyPrompt(t *testing.T) {
	prompt := Build(KindClassifyExperience, map[string]string{"ResumeText": "RESUME-MARKER"})
	require.Contains(t, prompt, "RESUME-MARKER")
	for _, band := range []string{"Fresh Graduate", "0-2 years", "2-5 years", "5+ years"} {
		assert.Contains(t, prompt, band)
	}
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Get("ai.json", "does-not-exist")
	assert.Error(t, err)
}

func TestGetUnknownFile(t *testing.T) {
	_, err := Get("missing.json", "extract-personal-info")
	assert.Error(t, err)
}
