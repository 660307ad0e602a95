// Package retriever selects the corpus passages relevant to a question and
// assembles them into a bounded context string for answer composition.
package retriever

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/finuxhq/docqa/internal/vectordb"
)

// pageTagPattern matches provenance markers left over from earlier exports
// of the corpus. They are metadata, not content, and must not reach answers.
var pageTagPattern = regexp.MustCompile(`\[Page \d+\]`)

// Result is the retrieval outcome for one question. A nil Result means the
// corpus has nothing relevant and the caller should fall back.
type Result struct {
	// Context is the deduplicated, cleaned passage text, capped at the
	// configured maximum length.
	Context string
	// Passages are the raw search hits, best-match-first.
	Passages []vectordb.SearchResult
	// Top is the best hit's similarity to the question.
	Top float32
}

// Retriever runs similarity search over the embedding index and gates
// results on a minimum similarity so off-corpus questions come back empty
// rather than with the least-irrelevant passage.
type Retriever struct {
	store           vectordb.VectorStore
	topK            int
	minSimilarity   float32
	maxContextChars int
}

func New(store vectordb.VectorStore, topK int, minSimilarity float64, maxContextChars int) *Retriever {
	if topK < 1 {
		topK = 1
	}
	return &Retriever{
		store:           store,
		topK:            topK,
		minSimilarity:   float32(minSimilarity),
		maxContextChars: maxContextChars,
	}
}

// Retrieve searches the index for passages relevant to the question.
// It returns (nil, nil) when the index is empty, when the best hit falls
// below the similarity threshold, or when cleanup leaves no usable text.
// A hit exactly at the threshold is accepted.
func (r *Retriever) Retrieve(ctx context.Context, question string) (*Result, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, nil
	}

	results, err := r.store.Search(ctx, question, r.topK, nil)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	if results[0].Similarity < r.minSimilarity {
		return nil, nil
	}

	assembled := r.assemble(results)
	if assembled == "" {
		return nil, nil
	}

	return &Result{
		Context:  assembled,
		Passages: results,
		Top:      results[0].Similarity,
	}, nil
}

// assemble joins the hit passages into one context string. Duplicate
// passages and duplicate lines are dropped, page markers stripped, and the
// total is truncated to maxContextChars on a line boundary where possible.
func (r *Retriever) assemble(results []vectordb.SearchResult) string {
	seenPassage := make(map[string]bool)
	seenLine := make(map[string]bool)

	var lines []string
	for _, res := range results {
		content := strings.TrimSpace(pageTagPattern.ReplaceAllString(res.Document.Content, ""))
		if content == "" || seenPassage[content] {
			continue
		}
		seenPassage[content] = true

		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || seenLine[line] {
				continue
			}
			seenLine[line] = true
			lines = append(lines, line)
		}
	}

	joined := strings.Join(lines, "\n")
	if r.maxContextChars > 0 && len(joined) > r.maxContextChars {
		cut := joined[:r.maxContextChars]
		if idx := strings.LastIndexByte(cut, '\n'); idx > 0 {
			cut = cut[:idx]
		}
		joined = strings.TrimSpace(cut)
	}
	return joined
}
