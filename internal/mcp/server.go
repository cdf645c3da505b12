// Package mcp implements the Model Context Protocol server, exposing ftag
// operations to LLMs. This enables AI assistants to list, set, remove and
// search file tags through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/ftag/extension"
	"github.com/jpl-au/ftag/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
func Serve(extCtx extension.Context) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(extCtx, extension.All())

	slog.Info("ftag MCP server ready", "version", Version, "transport", "stdio", "attribute", extCtx.Service().Attribute())

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with the built-in tag tools and any tools
// contributed by exts.
func NewServer(extCtx extension.Context, exts []extension.Extension) *server.MCPServer {
	s := server.NewMCPServer(
		"ftag",
		Version,
		server.WithToolCapabilities(true),
	)

	h := &handlers{svc: extCtx.Service(), literal: extCtx.Config().FindLiteral()}
	registerTools(s, h)
	registerExtensionTools(s, extCtx, exts)
	return s
}

// handlers provides MCP request handlers with access to the tag service.
type handlers struct {
	svc     service.Service
	literal bool // default for ftag_find when the literal argument is omitted
}

// registerTools exposes ftag operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// List
	s.AddTool(
		mcp.NewTool("ftag_list",
			mcp.WithDescription("List the tags stored on a file or directory"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Filesystem path")),
		),
		h.listTags,
	)

	// Set
	s.AddTool(
		mcp.NewTool("ftag_set",
			mcp.WithDescription("Add tags to a file or directory. Tags are lower-cased; tags already present are skipped. Tags may not contain commas."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Filesystem path")),
			mcp.WithArray("tags", mcp.Required(), mcp.Description("Tags to add"), mcp.WithStringItems()),
			mcp.WithBoolean("dry_run", mcp.Description("Return the resulting tags without writing them")),
		),
		h.setTags,
	)

	// Remove
	s.AddTool(
		mcp.NewTool("ftag_remove",
			mcp.WithDescription("Remove tags from a file or directory. Tags are matched exactly, without lower-casing."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Filesystem path")),
			mcp.WithArray("tags", mcp.Required(), mcp.Description("Tags to remove"), mcp.WithStringItems()),
			mcp.WithBoolean("dry_run", mcp.Description("Return the resulting tags without writing them")),
		),
		h.removeTags,
	)

	// Find
	s.AddTool(
		mcp.NewTool("ftag_find",
			mcp.WithDescription("Recursively search a directory for entries whose tags match any of the given regular expressions. With no tags, every tagged entry is returned."),
			mcp.WithString("path", mcp.Description("Directory to search (default: current directory)")),
			mcp.WithArray("tags", mcp.Description("Tag patterns to match"), mcp.WithStringItems()),
			mcp.WithBoolean("literal", mcp.Description("Match tags as plain text instead of regular expressions")),
			mcp.WithString("name", mcp.Description("Only consider entries whose path below the root matches this glob (supports **)")),
		),
		h.findTags,
	)

	// Guide
	s.AddTool(
		mcp.NewTool("ftag_guide",
			mcp.WithDescription("Read an ftag guide page. Unknown topics return the topic index with titles."),
			mcp.WithString("topic", mcp.Description("Guide topic such as 'set', 'find' or 'attributes'; empty for the overview")),
		),
		h.getGuide,
	)

	// Config Get
	s.AddTool(
		mcp.NewTool("ftag_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (author.name, author.email, tags.attribute, find.literal) or empty for all")),
		),
		h.configGet,
	)
}

// registerExtensionTools adds tools contributed by extensions, binding each
// handler to the shared extension context.
func registerExtensionTools(s *server.MCPServer, extCtx extension.Context, exts []extension.Extension) {
	for _, ext := range exts {
		for _, t := range ext.MCPTools() {
			handler := t.Handler
			s.AddTool(t.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, extCtx, req)
			})
		}
	}
}
