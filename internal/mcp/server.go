// Package mcp exposes the question-answering service to agent clients over
// the Model Context Protocol.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/finuxhq/docqa/internal/composer"
	"github.com/finuxhq/docqa/internal/vectordb"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Answerer produces the answer text for a question.
type Answerer interface {
	Answer(ctx context.Context, q composer.Question) string
}

// Server wraps an MCP server exposing document QA tools.
type Server struct {
	store    vectordb.VectorStore
	answerer Answerer
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(store vectordb.VectorStore, answerer Answerer) *Server {
	s := &Server{
		store:    store,
		answerer: answerer,
	}

	s.mcp = server.NewMCPServer(
		"docqa",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(askDocsTool, s.handleAskDocs)
	s.mcp.AddTool(searchDocsTool, s.handleSearchDocs)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
