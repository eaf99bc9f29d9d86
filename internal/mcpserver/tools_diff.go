package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/podtools/differ"
)

type diffInput struct {
	Source   docInput `json:"source"              jsonschema:"The base parse dump"`
	Target   docInput `json:"target"              jsonschema:"The revised parse dump"`
	ListMode string   `json:"list_mode,omitempty" jsonschema:"List normalization mode applied to both sides"`
}

type diffChange struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type diffOutput struct {
	Equal        bool         `json:"equal"`
	AddedCount   int          `json:"added_count"`
	RemovedCount int          `json:"removed_count"`
	Changes      []diffChange `json:"changes,omitempty"`
	Patch        string       `json:"patch,omitempty"`
}

func handleDiff(_ context.Context, _ *mcp.CallToolRequest, input diffInput) (*mcp.CallToolResult, diffOutput, error) {
	mode, err := effectiveListMode(input.ListMode)
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	source, err := input.Source.resolve(mode)
	if err != nil {
		return errResult(fmt.Errorf("source: %w", err)), diffOutput{}, nil
	}
	target, err := input.Target.resolve(mode)
	if err != nil {
		return errResult(fmt.Errorf("target: %w", err)), diffOutput{}, nil
	}

	result, err := differ.Diff(source.Tree, target.Tree)
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	output := diffOutput{
		Equal:        result.Equal,
		AddedCount:   result.AddedCount,
		RemovedCount: result.RemovedCount,
		Patch:        result.Patch,
	}
	for _, c := range result.Changes {
		output.Changes = append(output.Changes, diffChange{
			Type: string(c.Type),
			Text: c.Text,
		})
	}

	return nil, output, nil
}
