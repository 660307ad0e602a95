package vectordb

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/finuxhq/docqa/internal/embeddings"
)

const collectionName = "passages"

// ChromemStore implements VectorStore using chromem-go. chromem computes
// cosine similarity over normalized vectors, so scores are in [0, 1] with
// higher meaning closer.
type ChromemStore struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedder   embeddings.Embedder
	embedFunc  chromem.EmbeddingFunc
}

// NewChromemStore creates a new in-memory ChromemStore. The collection owns
// the embedding function, so build-time and query-time embeddings are
// guaranteed to use the same model.
func NewChromemStore(embedder embeddings.Embedder) (*ChromemStore, error) {
	db := chromem.NewDB()
	ef := embeddings.ToChromemFunc(embedder)

	col, err := db.GetOrCreateCollection(collectionName, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return &ChromemStore{
		db:         db,
		collection: col,
		embedder:   embedder,
		embedFunc:  ef,
	}, nil
}

func (s *ChromemStore) AddDocuments(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	chromDocs := make([]chromem.Document, len(docs))
	for i, doc := range docs {
		chromDocs[i] = chromem.Document{
			ID:       doc.ID,
			Content:  doc.Content,
			Metadata: metadataToMap(doc.Metadata),
		}
	}

	return s.collection.AddDocuments(ctx, chromDocs, 1)
}

func (s *ChromemStore) Search(ctx context.Context, query string, limit int, filter *SearchFilter) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 3
	}

	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if limit > count {
		limit = count
	}

	where := buildWhereClause(filter)

	// Query the whole collection, not just the top limit. chromem scores
	// documents concurrently and orders equal similarities differently on
	// each call, so both the ordering and the cut must happen after the
	// deterministic sort below. The similarity computation is exhaustive
	// either way.
	results, err := s.collection.Query(ctx, query, count, where, nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	searchResults := make([]SearchResult, len(results))
	for i, r := range results {
		searchResults[i] = SearchResult{
			Document: Document{
				ID:       r.ID,
				Content:  r.Content,
				Metadata: mapToMetadata(r.Metadata),
			},
			Similarity: r.Similarity,
		}
	}

	// Best match first; ties fall back to document ID, whose
	// source:page:chunk shape follows ingestion order.
	sort.SliceStable(searchResults, func(i, j int) bool {
		if searchResults[i].Similarity != searchResults[j].Similarity {
			return searchResults[i].Similarity > searchResults[j].Similarity
		}
		return searchResults[i].Document.ID < searchResults[j].Document.ID
	})

	if len(searchResults) > limit {
		searchResults = searchResults[:limit]
	}
	return searchResults, nil
}

func (s *ChromemStore) Persist(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating index dir: %w", err)
	}
	return s.db.ExportToFile(dir+"/index.gob.gz", true, "")
}

func (s *ChromemStore) Load(ctx context.Context, dir string) error {
	err := s.db.ImportFromFile(dir+"/index.gob.gz", "")
	if err != nil {
		return fmt.Errorf("import from file: %w", err)
	}

	// Re-acquire collection reference after import.
	col := s.db.GetCollection(collectionName, s.embedFunc)
	if col == nil {
		return fmt.Errorf("collection %q not found after import", collectionName)
	}
	s.collection = col
	return nil
}

func (s *ChromemStore) Count() int {
	return s.collection.Count()
}

// metadataToMap converts DocumentMetadata to a flat map[string]string for chromem.
func metadataToMap(m DocumentMetadata) map[string]string {
	return map[string]string{
		"source":      m.Source,
		"page":        strconv.Itoa(m.Page),
		"chunk":       strconv.Itoa(m.Chunk),
		"ingested_at": m.IngestedAt.Format(time.RFC3339),
	}
}

// mapToMetadata converts a flat map[string]string back to DocumentMetadata.
func mapToMetadata(m map[string]string) DocumentMetadata {
	page, _ := strconv.Atoi(m["page"])
	chunk, _ := strconv.Atoi(m["chunk"])
	ingestedAt, _ := time.Parse(time.RFC3339, m["ingested_at"])

	return DocumentMetadata{
		Source:     m["source"],
		Page:       page,
		Chunk:      chunk,
		IngestedAt: ingestedAt,
	}
}

// buildWhereClause converts a SearchFilter to a chromem where clause.
func buildWhereClause(filter *SearchFilter) map[string]string {
	if filter == nil || filter.Source == nil {
		return nil
	}
	return map[string]string{"source": *filter.Source}
}
