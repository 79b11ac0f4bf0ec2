// Package extract converts uploaded resume documents into plain text.
// Documents are processed entirely in memory and never written to disk.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Extract returns the plain text content of an uploaded document. The format
// is chosen by filename extension. The returned text is trimmed; if nothing
// remains after trimming, a *NoTextContentError is returned.
func Extract(filename string, data []byte) (string, error) {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = extractPDF(data)
	case ".doc", ".docx":
		text, err = extractDocx(data)
	default:
		return "", &UnsupportedFormatError{Filename: filename}
	}

	if err != nil {
		return "", &ExtractionError{Filename: filename, Cause: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &NoTextContentError{Filename: filename}
	}

	return text, nil
}

// extractPDF concatenates per-page text with newline separators, in page order.
func extractPDF(data []byte) (text string, err error) {
	// The pdf library panics on some malformed files; keep that contained.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf decode panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// extractDocx concatenates paragraph texts in document order, one per line.
func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
