package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type dumpInput struct {
	Doc      docInput `json:"doc"                 jsonschema:"The parse dump to convert and render"`
	ListMode string   `json:"list_mode,omitempty" jsonschema:"List normalization mode: per-item or merged"`
	MaxLines int      `json:"max_lines,omitempty" jsonschema:"Maximum dump lines to return (capped at PODTOOLS_DUMP_LIMIT)"`
}

type dumpOutput struct {
	Dump       string `json:"dump"`
	LineCount  int    `json:"line_count"`
	TotalLines int    `json:"total_lines"`
	Truncated  bool   `json:"truncated,omitempty"`
}

func handleDump(_ context.Context, _ *mcp.CallToolRequest, input dumpInput) (*mcp.CallToolResult, dumpOutput, error) {
	mode, err := effectiveListMode(input.ListMode)
	if err != nil {
		return errResult(err), dumpOutput{}, nil
	}

	result, err := input.Doc.resolve(mode)
	if err != nil {
		return errResult(err), dumpOutput{}, nil
	}

	limit := cfg.DumpLimit
	if input.MaxLines > 0 && input.MaxLines < limit {
		limit = input.MaxLines
	}

	dump := result.Tree.DumpString()
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")

	output := dumpOutput{TotalLines: len(lines)}
	if len(lines) > limit {
		lines = lines[:limit]
		output.Truncated = true
	}
	output.LineCount = len(lines)
	output.Dump = strings.Join(lines, "\n") + "\n"

	return nil, output, nil
}
