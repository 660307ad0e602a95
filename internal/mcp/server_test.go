package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/finuxhq/docqa/internal/composer"
	"github.com/finuxhq/docqa/internal/vectordb"
)

// mockStore implements vectordb.VectorStore for testing.
type mockStore struct {
	docs []vectordb.Document
}

func (m *mockStore) AddDocuments(_ context.Context, docs []vectordb.Document) error {
	m.docs = append(m.docs, docs...)
	return nil
}

func (m *mockStore) Search(_ context.Context, _ string, limit int, filter *vectordb.SearchFilter) ([]vectordb.SearchResult, error) {
	var results []vectordb.SearchResult
	for _, doc := range m.docs {
		if filter != nil && filter.Source != nil && doc.Metadata.Source != *filter.Source {
			continue
		}
		results = append(results, vectordb.SearchResult{
			Document:   doc,
			Similarity: 0.95,
		})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

func (m *mockStore) Persist(_ context.Context, _ string) error { return nil }
func (m *mockStore) Load(_ context.Context, _ string) error    { return nil }
func (m *mockStore) Count() int                                { return len(m.docs) }

type mockAnswerer struct {
	answer string
}

func (m *mockAnswerer) Answer(_ context.Context, _ composer.Question) string {
	return m.answer
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"ask_docs", askDocsTool, "ask_docs"},
		{"search_docs", searchDocsTool, "search_docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	store := &mockStore{}
	srv := NewServer(store, &mockAnswerer{})

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.store != store {
		t.Error("store not set correctly")
	}
}

func TestHandleAskDocs(t *testing.T) {
	srv := NewServer(&mockStore{}, &mockAnswerer{answer: "The annual fee is $100."})
	ctx := context.Background()

	t.Run("question", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"question": "what is the annual fee?",
		}

		result, err := srv.handleAskDocs(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
	})

	t.Run("missing question", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleAskDocs(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing question")
		}
	})
}

func TestHandleSearchDocs(t *testing.T) {
	store := &mockStore{
		docs: []vectordb.Document{
			{
				ID:      "fees.pdf:1:0",
				Content: "The annual fee for the premium card is $100.",
				Metadata: vectordb.DocumentMetadata{
					Source: "fees.pdf",
					Page:   1,
				},
			},
			{
				ID:      "hours.txt:0:0",
				Content: "Branches are open 9am to 5pm on weekdays.",
				Metadata: vectordb.DocumentMetadata{
					Source: "hours.txt",
				},
			},
		},
	}
	srv := NewServer(store, &mockAnswerer{})
	ctx := context.Background()

	t.Run("basic search", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"query": "annual fee",
		}

		result, err := srv.handleSearchDocs(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
	})

	t.Run("search with source filter", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"query":  "hours",
			"source": "hours.txt",
		}

		result, err := srv.handleSearchDocs(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
	})

	t.Run("missing query", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleSearchDocs(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing query")
		}
	})

	t.Run("empty store", func(t *testing.T) {
		emptySrv := NewServer(&mockStore{}, &mockAnswerer{})
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"query": "anything",
		}

		result, err := emptySrv.handleSearchDocs(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Error("empty results should not be an error")
		}
	})
}

func TestFormatSearchResults(t *testing.T) {
	results := []vectordb.SearchResult{
		{
			Document: vectordb.Document{
				ID:      "fees.pdf:3:1",
				Content: "The annual fee is $100.",
				Metadata: vectordb.DocumentMetadata{
					Source: "fees.pdf",
					Page:   3,
				},
			},
			Similarity: 0.91,
		},
	}

	out := formatSearchResults(results)
	for _, want := range []string{"fees.pdf", "page 3", "0.91", "$100"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
