// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes podtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/podtools"
)

const serverInstructions = `podtools MCP server — builds, inspects, dumps, and diffs documentation trees from parser dumps.

Configuration: All defaults are configurable via PODTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- PODTOOLS_CACHE_FILE_TTL (default: 15m) — cache TTL for local dump files
- PODTOOLS_CACHE_CONTENT_TTL (default: 15m) — cache TTL for inline content
- PODTOOLS_CACHE_ENABLED (default: true) — disable document caching entirely
- PODTOOLS_DUMP_LIMIT (default: 500) — maximum lines returned by the dump tool
- PODTOOLS_OUTLINE_DEPTH (default: 6) — maximum outline nesting depth
- PODTOOLS_LIST_MODE — default list normalization mode (per-item or merged)

Caching: Converted documents are cached per session. File entries use path+mtime as key (auto-invalidated on change); inline content is keyed by hash. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "podtools", Version: podtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "build",
		Description: "Convert a parser dump (JSON or YAML) into a normalized documentation tree. Returns node statistics, list normalization fixes, and conversion issues. Use list_mode to choose per-item or merged list wrapping; the default is configurable via PODTOOLS_LIST_MODE.",
	}, handleBuild)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "outline",
		Description: "Build a document and return its heading outline. Sections and headings nest by level. Use depth to limit nesting; semantic all-caps section names (NAME, SYNOPSIS, ...) are title-cased for display unless raw=true.",
	}, handleOutline)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dump",
		Description: "Build a document and return its stable tree dump, one node per line with indentation showing structure. Output is truncated at PODTOOLS_DUMP_LIMIT lines (default 500); use max_lines to lower the cap further.",
	}, handleDump)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "diff",
		Description: "Compare two versions of a document and report line-level changes between their normalized tree dumps. Both source and target must be provided. Returns added/removed lines and a text patch.",
	}, handleDiff)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
