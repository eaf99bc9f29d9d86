package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/podtools/internal/naming"
	"github.com/erraggy/podtools/walker"
)

type outlineInput struct {
	Doc      docInput `json:"doc"                 jsonschema:"The parse dump to outline"`
	ListMode string   `json:"list_mode,omitempty" jsonschema:"List normalization mode: per-item or merged"`
	Depth    int      `json:"depth,omitempty"     jsonschema:"Maximum outline nesting depth (default PODTOOLS_OUTLINE_DEPTH)"`
	Raw      bool     `json:"raw,omitempty"       jsonschema:"Keep section names verbatim instead of title-casing semantic names"`
}

// outlineEntry is one flattened outline row. The shape stays non-recursive
// because the tool's output schema is derived by reflection, which rejects
// cyclic types; nesting is conveyed by Depth instead of child lists.
type outlineEntry struct {
	Title string `json:"title"`
	Level int    `json:"level"`
	Path  string `json:"path"`
	Depth int    `json:"depth"`
}

type outlineOutput struct {
	Entries   []outlineEntry `json:"entries,omitempty"`
	Truncated bool           `json:"truncated,omitempty"`
}

func handleOutline(_ context.Context, _ *mcp.CallToolRequest, input outlineInput) (*mcp.CallToolResult, outlineOutput, error) {
	mode, err := effectiveListMode(input.ListMode)
	if err != nil {
		return errResult(err), outlineOutput{}, nil
	}

	result, err := input.Doc.resolve(mode)
	if err != nil {
		return errResult(err), outlineOutput{}, nil
	}

	entries, err := walker.Outline(result.Tree)
	if err != nil {
		return errResult(err), outlineOutput{}, nil
	}

	maxDepth := input.Depth
	if maxDepth <= 0 {
		maxDepth = cfg.OutlineDepth
	}

	output := outlineOutput{}
	output.Entries, output.Truncated = renderOutline(entries, maxDepth, input.Raw)
	return nil, output, nil
}

// renderOutline flattens walker outline entries in document order, cutting
// off below maxDepth. The top level is depth 0. The second return reports
// whether anything was cut.
func renderOutline(entries []*walker.OutlineEntry, maxDepth int, raw bool) ([]outlineEntry, bool) {
	var out []outlineEntry
	truncated := flattenOutline(&out, entries, 0, maxDepth, raw)
	return out, truncated
}

func flattenOutline(out *[]outlineEntry, entries []*walker.OutlineEntry, depth, maxDepth int, raw bool) bool {
	if len(entries) == 0 {
		return false
	}
	if depth >= maxDepth {
		return true
	}
	truncated := false
	for _, e := range entries {
		title := e.Heading.Text
		if !raw {
			title = naming.DisplayTitle(title)
		}
		*out = append(*out, outlineEntry{
			Title: title,
			Level: e.Heading.Level,
			Path:  e.Heading.Path,
			Depth: depth,
		})
		if flattenOutline(out, e.Children, depth+1, maxDepth, raw) {
			truncated = true
		}
	}
	return truncated
}
