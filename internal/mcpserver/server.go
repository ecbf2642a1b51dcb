// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes Notion search and article retrieval tools via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/ansuz/internal/article"
)

// Server wraps the MCP server with the Notion tools.
type Server struct {
	mcp *server.MCPServer
	svc *article.Service
}

// New creates a new MCP server with both tools registered.
func New(svc *article.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Notion",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("notion_search",
		mcp.WithDescription("Search for articles in Notion. Returns up to 'limit' matching pages "+
			"sorted by last edited time (the only sort field the Notion search API supports). "+
			"Only the first page of results is fetched."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search keyword")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default: 10, capped at 100)")),
		mcp.WithString("sort_order", mcp.Description("Sort order (asc, desc) (default: desc)"),
			mcp.Enum("asc", "desc")),
	), s.search)

	s.mcp.AddTool(mcp.NewTool("notion_get_article",
		mcp.WithDescription("Retrieve article content from Notion. Fetches the page metadata and "+
			"its first 100 content blocks; nested children are not followed. See the "+
			"notion://output-format resource for the response schema and rendering rules."),
		mcp.WithString("article_id", mcp.Required(), mcp.Description("ID of the article to retrieve")),
		mcp.WithString("format", mcp.Description("Output format (json, markdown, text) (default: json)"),
			mcp.Enum("json", "markdown", "text")),
	), s.getArticle)

	// Resource: output format contract.
	s.mcp.AddResource(
		mcp.NewResource("notion://output-format", "Article Output Format",
			mcp.WithResourceDescription("Schema and rendering rules for notion_get_article output."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readOutputFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout with default lifecycle
// handling.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// Listen starts the MCP server on stdin/stdout and stops when ctx is
// cancelled.
func (s *Server) Listen(ctx context.Context) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := req.GetInt("limit", 10)
	sortOrder := req.GetString("sort_order", "desc")

	results, err := s.svc.Search(ctx, query, limit, sortOrder)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getArticle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	articleID, err := req.RequireString("article_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format := req.GetString("format", article.FormatJSON)

	detail, err := s.svc.GetArticle(ctx, articleID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch format {
	case article.FormatMarkdown:
		return mcp.NewToolResultText(article.Markdown(detail)), nil
	case article.FormatText:
		return mcp.NewToolResultText(article.Text(detail)), nil
	default:
		out, _ := json.MarshalIndent(detail, "", "  ")
		return mcp.NewToolResultText(string(out)), nil
	}
}

func (s *Server) readOutputFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "notion://output-format",
			MIMEType: "text/markdown",
			Text:     OutputFormatContract,
		},
	}, nil
}
