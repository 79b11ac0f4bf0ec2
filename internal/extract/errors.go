package extract

import "fmt"

// UnsupportedFormatError indicates the uploaded file has an extension outside
// the supported set (.pdf, .doc, .docx).
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s (expected .pdf, .doc, or .docx)", e.Filename)
}

// NoTextContentError indicates extraction succeeded but produced no text.
type NoTextContentError struct {
	Filename string
}

func (e *NoTextContentError) Error() string {
	return fmt.Sprintf("no text content found in %s", e.Filename)
}

// ExtractionError wraps a decoding failure for a corrupt or unreadable document.
type ExtractionError struct {
	Filename string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from %s: %v", e.Filename, e.Cause)
	}
	return fmt.Sprintf("failed to extract text from %s", e.Filename)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
