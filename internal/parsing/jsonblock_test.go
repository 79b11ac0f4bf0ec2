package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{
			name:     "bare object",
			input:    `{"name": "Jane"}`,
			expected: `{"name": "Jane"}`,
			found:    true,
		},
		{
			name:     "object wrapped in prose",
			input:    "Here is the result you asked for:\n{\"name\": \"Jane\"}\nLet me know if you need more.",
			expected: `{"name": "Jane"}`,
			found:    true,
		},
		{
			name:     "array wrapped in prose",
			input:    "Sure! [1, 2, 3] is the answer.",
			expected: `[1, 2, 3]`,
			found:    true,
		},
		{
			name:     "brace inside string literal",
			input:    `prefix {"note": "use {braces} carefully", "n": 1} suffix`,
			expected: `{"note": "use {braces} carefully", "n": 1}`,
			found:    true,
		},
		{
			name:     "escaped quote inside string",
			input:    `{"quote": "she said \"hi\" twice"}`,
			expected: `{"quote": "she said \"hi\" twice"}`,
			found:    true,
		},
		{
			name:     "nested structures",
			input:    `result: {"jobs": [{"title": "Dev"}]}`,
			expected: `{"jobs": [{"title": "Dev"}]}`,
			found:    true,
		},
		{
			name:  "no json at all",
			input: "I could not find any structured data in the resume.",
			found: false,
		},
		{
			name:  "unbalanced json",
			input: `{"name": "Jane"`,
			found: false,
		},
		{
			name:  "empty input",
			input: "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, found := ExtractJSONBlock(tt.input)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.expected, block)
			}
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{
			name:     "array with prose prefix and suffix",
			input:    "Here are the listings: [{\"title\": \"Dev\"}] hope that helps",
			expected: `[{"title": "Dev"}]`,
			found:    true,
		},
		{
			name:     "object before array",
			input:    `{"not": "this"} but [1, 2]`,
			expected: `[1, 2]`,
			found:    true,
		},
		{
			name:  "only an object",
			input: `{"jobs": "none"}`,
			found: false,
		},
		{
			name:  "no array",
			input: "nothing structured here",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, found := ExtractJSONArray(tt.input)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.expected, block)
			}
		})
	}
}
