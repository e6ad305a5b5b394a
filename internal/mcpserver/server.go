// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes errloc capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/errloc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `errloc MCP server. Renders Vulkan validation error locations and resolves them to valid usage IDs (VUIDs).

A location is a call name (e.g. vkCmdPipelineBarrier), a reference page (e.g. VkImageMemoryBarrier), and a dotted field path (e.g. pImageMemoryBarriers[2].srcAccessMask). Tools also accept a full rendered message such as "vkCmdPipelineBarrier(): pImageMemoryBarriers[2].srcAccessMask" in place of func and path.

Configuration: defaults are configurable via ERRLOC_* environment variables set in your MCP client config.

Key settings:
- ERRLOC_VUID_TABLE: YAML VUID table used when a call does not name one (default: embedded table)
- ERRLOC_LIST_LIMIT (default: 100): default result limit for list_identifiers
- ERRLOC_MAX_LIMIT (default: 1000): upper bound on any requested limit
- ERRLOC_INCLUDE_SPEC_URL (default: true): include specification links in resolve_vuid output`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "errloc", Version: errloc.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_location",
		Description: "Render a validation error location as the canonical message text, e.g. \"vkCmdPipelineBarrier(): pImageMemoryBarriers[2].srcAccessMask\". Provide func with an optional dotted path, or a full message to normalize. Returns the message plus the call, reference page, current field, index, and every path segment.",
	}, handleRenderLocation)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_vuid",
		Description: "Resolve a validation error location to its valid usage ID (VUID). refpage is required. A call-specific table entry wins over a generic one for the same reference page and field; unmatched locations return VUID_Undefined with defined=false. Use table to read a different YAML table; the default is configurable via ERRLOC_VUID_TABLE.",
	}, handleResolveVuid)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_identifiers",
		Description: "List the registered identifiers of one kind: funcs, refpages, or fields. Use filter for a case-insensitive substring match and offset/limit to paginate. Default limit is configurable via ERRLOC_LIST_LIMIT (default 100).",
	}, handleListIdentifiers)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
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
