package mcpserver

import (
	"context"

	"github.com/erraggy/errloc/internal/locview"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func handleRenderLocation(_ context.Context, _ *mcp.CallToolRequest, input locationInput) (*mcp.CallToolResult, locview.View, error) {
	loc, err := input.resolve()
	if err != nil {
		return errResult(err), locview.View{}, nil
	}
	return nil, locview.New(loc), nil
}
