package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/errloc/location"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listInput struct {
	Kind   string `json:"kind"             jsonschema:"Identifier kind: funcs, refpages, or fields"`
	Filter string `json:"filter,omitempty" jsonschema:"Case-insensitive substring to match against names"`
	Offset int    `json:"offset,omitempty" jsonschema:"Skip the first N names (for pagination)"`
	Limit  int    `json:"limit,omitempty"  jsonschema:"Maximum number of names to return (default 100)"`
}

type listOutput struct {
	Kind     string   `json:"kind"`
	Total    int      `json:"total"`
	Returned int      `json:"returned"`
	Names    []string `json:"names,omitempty"`
}

func handleListIdentifiers(_ context.Context, _ *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, listOutput, error) {
	names, err := location.Names(input.Kind)
	if err != nil {
		return errResult(fmt.Errorf("%w; valid values: %s", err, strings.Join(location.Kinds(), ", "))), listOutput{}, nil
	}

	if input.Filter != "" {
		filter := strings.ToLower(input.Filter)
		matched := makeSlice[string](len(names))
		for _, n := range names {
			if strings.Contains(strings.ToLower(n), filter) {
				matched = append(matched, n)
			}
		}
		names = matched
	}

	output := listOutput{
		Kind:  strings.ToLower(input.Kind),
		Total: len(names),
		Names: paginate(names, input.Offset, input.Limit),
	}
	output.Returned = len(output.Names)
	return nil, output, nil
}
