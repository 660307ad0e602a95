package ingest

import (
	"fmt"
	"os"
	"strings"
)

// TextExtractor handles plain text and markdown files as a single block.
type TextExtractor struct{}

func (e *TextExtractor) Extract(path string) ([]Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, nil
	}
	return []Block{{Text: text}}, nil
}
