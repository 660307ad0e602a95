package vectordb

import "context"

// VectorStore is the embedding index: a searchable collection of
// (vector, passage) pairs. The index is built once per process lifetime and
// is read-only while serving; concurrent Search calls are safe.
type VectorStore interface {
	// AddDocuments embeds and stores the given passages.
	AddDocuments(ctx context.Context, docs []Document) error

	// Search returns up to limit passages nearest to the query text,
	// best-match-first; equal scores are ordered by document ID, so
	// repeated calls return the same ordering. An empty result means the
	// index itself is empty.
	Search(ctx context.Context, query string, limit int, filter *SearchFilter) ([]SearchResult, error)

	// Persist saves the index to the given directory.
	Persist(ctx context.Context, dir string) error

	// Load restores the index from the given directory.
	Load(ctx context.Context, dir string) error

	// Count returns the total number of indexed passages.
	Count() int
}
