package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/finuxhq/docqa/internal/composer"
	"github.com/finuxhq/docqa/internal/vectordb"
)

// handleAskDocs runs a question through the full answer chain.
func (s *Server) handleAskDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	answer := s.answerer.Answer(ctx, composer.Question{
		Platform: "mcp",
		Text:     question,
	})
	return mcp.NewToolResultText(answer), nil
}

// handleSearchDocs performs semantic search over the passage index.
func (s *Server) handleSearchDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}

	var filter *vectordb.SearchFilter
	if source := request.GetString("source", ""); source != "" {
		filter = &vectordb.SearchFilter{Source: &source}
	}

	results, err := s.store.Search(ctx, query, limit, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	if len(results) == 0 {
		return mcp.NewToolResultText("No results found. The corpus may not be indexed yet. Run `docqa ingest` to index it."), nil
	}

	return mcp.NewToolResultText(formatSearchResults(results)), nil
}

// formatSearchResults renders search hits as readable text for the agent.
func formatSearchResults(results []vectordb.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d passages:\n\n", len(results))
	for i, res := range results {
		fmt.Fprintf(&b, "## %d. %s", i+1, res.Document.Metadata.Source)
		if res.Document.Metadata.Page > 0 {
			fmt.Fprintf(&b, " (page %d)", res.Document.Metadata.Page)
		}
		fmt.Fprintf(&b, " (similarity %.2f)\n%s\n\n", res.Similarity, res.Document.Content)
	}
	return strings.TrimSpace(b.String())
}
