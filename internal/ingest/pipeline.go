package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/finuxhq/docqa/internal/chunker"
	"github.com/finuxhq/docqa/internal/progress"
	"github.com/finuxhq/docqa/internal/vectordb"
)

// Stats summarizes one indexing run.
type Stats struct {
	Files    int
	Blocks   int
	Passages int
}

// Pipeline builds the embedding index from a corpus directory.
type Pipeline struct {
	docsDir  string
	splitter *chunker.Chunker
	store    vectordb.VectorStore
	reporter progress.Reporter
}

func NewPipeline(docsDir string, splitter *chunker.Chunker, store vectordb.VectorStore, reporter progress.Reporter) *Pipeline {
	if reporter == nil {
		reporter = progress.NullReporter{}
	}
	return &Pipeline{
		docsDir:  docsDir,
		splitter: splitter,
		store:    store,
		reporter: reporter,
	}
}

// Run extracts, chunks, and indexes the given corpus files. File paths are
// relative to the pipeline's docs directory. Extraction failures abort the
// run; an embedding index built from half a corpus answers with misplaced
// confidence.
func (p *Pipeline) Run(ctx context.Context, files []string) (*Stats, error) {
	stats := &Stats{}
	now := time.Now().UTC()

	p.reporter.Start(len(files))
	defer p.reporter.Finish()

	for i, rel := range files {
		p.reporter.Update(i, rel)

		extractor, ok := ExtractorFor(rel)
		if !ok {
			continue
		}

		blocks, err := extractor.Extract(filepath.Join(p.docsDir, rel))
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", rel, err)
		}
		if len(blocks) == 0 {
			continue
		}
		stats.Files++

		var docs []vectordb.Document
		for _, block := range blocks {
			stats.Blocks++
			for c, passage := range p.splitter.Split(block.Text) {
				docs = append(docs, vectordb.Document{
					ID:      fmt.Sprintf("%s:%d:%d", rel, block.Page, c),
					Content: passage,
					Metadata: vectordb.DocumentMetadata{
						Source:     rel,
						Page:       block.Page,
						Chunk:      c,
						IngestedAt: now,
					},
				})
			}
		}
		if len(docs) == 0 {
			continue
		}

		if err := p.store.AddDocuments(ctx, docs); err != nil {
			return nil, fmt.Errorf("indexing %s: %w", rel, err)
		}
		stats.Passages += len(docs)

		p.reporter.Update(i+1, rel)
	}

	return stats, nil
}
