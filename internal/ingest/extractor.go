// Package ingest turns corpus files into indexed passages: it discovers
// documents, extracts their text per format, chunks it, and feeds the
// embedding index.
package ingest

import (
	"path/filepath"
	"strings"
)

// Block is an ordered unit of raw text extracted from one document, tagged
// with its page number where the format has pages.
type Block struct {
	// Page is 1-based for paginated formats, 0 otherwise.
	Page int
	Text string
}

// Extractor extracts ordered text blocks from a document file. An absent
// file yields an empty block list, not an error; the service tolerates an
// empty corpus by serving fallback-only answers.
type Extractor interface {
	Extract(path string) ([]Block, error)
}

// ExtractorFor returns the extractor for the given file path based on its
// extension, or false if the format is unsupported.
func ExtractorFor(path string) (Extractor, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return &PDFExtractor{}, true
	case ".docx":
		return &DocxExtractor{}, true
	case ".txt", ".md":
		return &TextExtractor{}, true
	default:
		return nil, false
	}
}
