package mcp

import "github.com/mark3labs/mcp-go/mcp"

// askDocsTool defines the ask_docs MCP tool.
var askDocsTool = mcp.NewTool("ask_docs",
	mcp.WithDescription("Ask a question answered from the indexed document corpus. Falls back to a general answer when the corpus has nothing relevant."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("Natural language question"),
	),
)

// searchDocsTool defines the search_docs MCP tool.
var searchDocsTool = mcp.NewTool("search_docs",
	mcp.WithDescription("Search the indexed document corpus semantically. Returns matching passages with their source and similarity."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language search query"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of passages to return (default 5)"),
	),
	mcp.WithString("source",
		mcp.Description("Restrict results to one source file, relative to the docs directory"),
	),
)
