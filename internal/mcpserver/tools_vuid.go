package mcpserver

import (
	"context"
	"errors"

	"github.com/erraggy/errloc/vuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type resolveInput struct {
	Func    string `json:"func,omitempty"    jsonschema:"Call name, e.g. vkQueueSubmit"`
	RefPage string `json:"refpage"           jsonschema:"Reference page that governs the rule, e.g. VkSubmitInfo"`
	Path    string `json:"path,omitempty"    jsonschema:"Dotted field path below the call, e.g. pSubmits[0].pWaitDstStageMask[1]"`
	Message string `json:"message,omitempty" jsonschema:"A full rendered location (replaces func and path)"`
	Table   string `json:"table,omitempty"   jsonschema:"Path to a YAML VUID table (default: ERRLOC_VUID_TABLE or the embedded table)"`
}

type resolveOutput struct {
	Location string `json:"location"`
	Vuid     string `json:"vuid"`
	Defined  bool   `json:"defined"`
	Prefix   string `json:"prefix"`
	SpecURL  string `json:"spec_url,omitempty"`
}

func handleResolveVuid(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	if input.RefPage == "" {
		return errResult(errors.New("refpage is required")), resolveOutput{}, nil
	}

	loc, err := locationInput{
		Func:    input.Func,
		RefPage: input.RefPage,
		Path:    input.Path,
		Message: input.Message,
	}.resolve()
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	reg, err := registries.get(input.Table)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	id := reg.Vuid(loc)
	output := resolveOutput{
		Location: loc.Message(),
		Vuid:     id,
		Defined:  id != vuid.Undefined,
		Prefix:   vuid.Prefix(loc),
	}
	if cfg.IncludeSpecURL {
		output.SpecURL = vuid.SpecURL(id)
	}
	return nil, output, nil
}
