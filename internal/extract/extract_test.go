package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractUnsupportedFormat(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"plain text", "resume.txt"},
		{"image", "resume.png"},
		{"no extension", "resume"},
		{"html", "resume.html"},
		{"pdf in the middle of the name", "resume.pdf.exe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.filename, []byte("some content"))
			require.Error(t, err)

			var unsupported *UnsupportedFormatError
			assert.ErrorAs(t, err, &unsupported)
			assert.Equal(t, tt.filename, unsupported.Filename)
		})
	}
}

func TestExtractCorruptDocuments(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
	}{
		{"garbage pdf", "resume.pdf", []byte("this is not a pdf")},
		{"empty pdf", "resume.pdf", nil},
		{"garbage docx", "resume.docx", []byte("this is not a zip archive")},
		{"garbage doc", "resume.doc", []byte{0x00, 0x01, 0x02}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.filename, tt.data)
			require.Error(t, err)

			var extraction *ExtractionError
			assert.ErrorAs(t, err, &extraction)
			assert.Equal(t, tt.filename, extraction.Filename)
			assert.Error(t, extraction.Unwrap())
		})
	}
}

func TestExtractionErrorMessages(t *testing.T) {
	_, err := Extract("resume.xlsx", []byte("data"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
	assert.Contains(t, err.Error(), "resume.xlsx")
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"simple sentence", "one two three", 3},
		{"extra whitespace", "  one\n\ttwo   three  ", 3},
		{"empty", "", 0},
		{"whitespace only", "   \n\t  ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WordCount(tt.text))
		})
	}
}
