package server

import (
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-platform/internal/extract"
)

// maxUploadBytes caps resume uploads. Resumes are small documents; anything
// larger is rejected before extraction.
const maxUploadBytes = 10 << 20

// maxBulkConcurrency bounds parallel extractions in a bulk upload.
const maxBulkConcurrency = 4

// handleUploadResume accepts a multipart resume upload, extracts its text in
// memory, and returns the text plus a word count. Nothing is persisted.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No resume file provided")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	text, err := extract.Extract(header.Filename, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.successResponse(w, map[string]any{
		"message":      "Resume " + header.Filename + " uploaded and processed successfully",
		"filename":     header.Filename,
		"size":         len(data),
		"text_content": text,
		"word_count":   extract.WordCount(text),
	})
}

// bulkUploadEntry is the per-file result of a bulk upload. Failed files carry
// an error message instead of text; one bad file never fails the batch.
type bulkUploadEntry struct {
	Filename    string `json:"filename"`
	Status      string `json:"status"`
	TextContent string `json:"text_content,omitempty"`
	WordCount   int    `json:"word_count,omitempty"`
	Message     string `json:"message,omitempty"`
}

// handleBulkUpload extracts text from multiple resumes concurrently,
// preserving input order in the response.
func (s *Server) handleBulkUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes * 4); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	files := r.MultipartForm.File["resumes"]
	if len(files) == 0 {
		files = r.MultipartForm.File["resume"]
	}
	if len(files) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No resume files provided")
		return
	}

	entries := make([]bulkUploadEntry, len(files))
	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(maxBulkConcurrency)

	for i, header := range files {
		g.Go(func() error {
			entries[i] = extractOne(header.Filename, func() (io.ReadCloser, error) {
				return header.Open()
			})
			return nil
		})
	}
	// Workers record per-file failures in their entries and never return an
	// error, so Wait only synchronizes.
	_ = g.Wait()

	succeeded := 0
	for _, e := range entries {
		if e.Status == "success" {
			succeeded++
		}
	}

	s.successResponse(w, map[string]any{
		"results":   entries,
		"total":     len(entries),
		"succeeded": succeeded,
	})
}

func extractOne(filename string, open func() (io.ReadCloser, error)) bulkUploadEntry {
	entry := bulkUploadEntry{Filename: filename, Status: "error"}

	f, err := open()
	if err != nil {
		entry.Message = "Failed to open uploaded file"
		return entry
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		entry.Message = "Failed to read uploaded file"
		return entry
	}

	text, err := extract.Extract(filename, data)
	if err != nil {
		entry.Message = err.Error()
		return entry
	}

	entry.Status = "success"
	entry.TextContent = text
	entry.WordCount = extract.WordCount(text)
	return entry
}
