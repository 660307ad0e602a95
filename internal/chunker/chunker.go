// Package chunker splits raw document text into overlapping bounded-size
// passages suitable for embedding and retrieval.
package chunker

import "strings"

const (
	defaultSize    = 800
	defaultOverlap = 150
)

// Chunker produces a sliding window of passages over text. Windows prefer to
// break at a paragraph break, then a line break, then a sentence end, then
// whitespace, so semantic units are not cut mid-word when avoidable.
type Chunker struct {
	size    int
	overlap int
}

// New creates a Chunker with the given passage size and overlap, both in
// characters. Out-of-range values fall back to defaults; overlap >= size is
// rejected upstream by config validation.
func New(size, overlap int) *Chunker {
	if size <= 0 {
		size = defaultSize
	}
	if overlap < 0 {
		overlap = defaultOverlap
	}
	if overlap >= size {
		overlap = size / 5
	}
	return &Chunker{size: size, overlap: overlap}
}

// Split divides text into passages of at most size characters, consecutive
// passages sharing roughly overlap characters. Empty or whitespace-only input
// yields no passages. Split is a pure function of its input.
func (c *Chunker) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	if len(runes) <= c.size {
		return []string{text}
	}

	var passages []string
	start := 0
	for start < len(runes) {
		end := start + c.size
		if end >= len(runes) {
			end = len(runes)
		} else {
			end = c.breakAt(runes, start, end)
		}

		if p := strings.TrimSpace(string(runes[start:end])); p != "" {
			passages = append(passages, p)
		}
		if end >= len(runes) {
			break
		}

		next := end - c.overlap
		if next <= start {
			// A short window must still advance.
			next = start + 1
		}
		start = next
	}
	return passages
}

// breakAt searches backwards from end for the best split position within the
// window. It never moves the boundary before the window's midpoint; a window
// with no separators in its second half is cut hard at end.
func (c *Chunker) breakAt(runes []rune, start, end int) int {
	floor := start + c.size/2

	// Paragraph break.
	for i := end - 1; i > floor; i-- {
		if runes[i] == '\n' && runes[i-1] == '\n' {
			return i + 1
		}
	}
	// Line break.
	for i := end - 1; i >= floor; i-- {
		if runes[i] == '\n' {
			return i + 1
		}
	}
	// Sentence end followed by space.
	for i := end - 1; i > floor; i-- {
		if isSentenceEnd(runes[i-1]) && runes[i] == ' ' {
			return i + 1
		}
	}
	// Any whitespace.
	for i := end - 1; i >= floor; i-- {
		if runes[i] == ' ' || runes[i] == '\t' {
			return i + 1
		}
	}
	return end
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
