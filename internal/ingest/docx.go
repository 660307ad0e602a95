package ingest

import (
	"fmt"
	"os"
	"strings"

	docx "github.com/fumiama/go-docx"
)

// DocxExtractor extracts text from DOCX files. Paragraphs are joined into a
// single block since the format carries no page information.
type DocxExtractor struct{}

func (e *DocxExtractor) Extract(path string) ([]Block, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening docx %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat docx %s: %w", path, err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parsing docx %s: %w", path, err)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if text := strings.TrimSpace(para.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}

	if len(paragraphs) == 0 {
		return nil, nil
	}
	return []Block{{Text: strings.Join(paragraphs, "\n")}}, nil
}
