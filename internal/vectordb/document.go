package vectordb

import "time"

// Document is one indexed passage of corpus text.
type Document struct {
	ID       string
	Content  string
	Metadata DocumentMetadata
}

// DocumentMetadata holds the provenance of a passage. It is kept out of the
// passage content so that page tags and file names never leak into answers.
type DocumentMetadata struct {
	// Source is the corpus file the passage came from, relative to docs_dir.
	Source string
	// Page is the 1-based page number for paginated formats; 0 when the
	// format has no pages (DOCX, plain text).
	Page int
	// Chunk is the 0-based ordinal of the passage within its source block.
	Chunk int
	// IngestedAt records when the passage was indexed.
	IngestedAt time.Time
}

// SearchResult pairs a passage with its cosine similarity to the query.
// Higher is better; scores are in [0, 1] for normalized embeddings.
type SearchResult struct {
	Document   Document
	Similarity float32
}

// SearchFilter narrows search results by metadata fields.
type SearchFilter struct {
	Source *string
}
