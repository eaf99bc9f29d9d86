package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type buildInput struct {
	Doc      docInput `json:"doc"                 jsonschema:"The parse dump to convert"`
	ListMode string   `json:"list_mode,omitempty" jsonschema:"List normalization mode: per-item or merged"`
}

type buildFix struct {
	Type        string `json:"type"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type buildIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

type buildOutput struct {
	NodeCount    int            `json:"node_count"`
	MaxDepth     int            `json:"max_depth"`
	KindCounts   map[string]int `json:"kind_counts,omitempty"`
	ListMode     string         `json:"list_mode"`
	FixCount     int            `json:"fix_count"`
	Fixes        []buildFix     `json:"fixes,omitempty"`
	InfoCount    int            `json:"info_count"`
	WarningCount int            `json:"warning_count"`
	Issues       []buildIssue   `json:"issues,omitempty"`
	SourceFormat string         `json:"source_format,omitempty"`
}

func handleBuild(_ context.Context, _ *mcp.CallToolRequest, input buildInput) (*mcp.CallToolResult, buildOutput, error) {
	mode, err := effectiveListMode(input.ListMode)
	if err != nil {
		return errResult(err), buildOutput{}, nil
	}

	result, err := input.Doc.resolve(mode)
	if err != nil {
		return errResult(err), buildOutput{}, nil
	}

	output := buildOutput{
		NodeCount:    result.Stats.NodeCount,
		MaxDepth:     result.Stats.MaxDepth,
		ListMode:     string(result.ListMode),
		FixCount:     result.FixCount,
		InfoCount:    result.InfoCount,
		WarningCount: result.WarningCount,
	}
	if result.SourcePath != "" || result.SourceFormat.String() != "unknown" {
		output.SourceFormat = result.SourceFormat.String()
	}

	if len(result.Stats.KindCounts) > 0 {
		output.KindCounts = make(map[string]int, len(result.Stats.KindCounts))
		for kind, n := range result.Stats.KindCounts {
			output.KindCounts[kind.String()] = n
		}
	}

	for _, fix := range result.Fixes {
		output.Fixes = append(output.Fixes, buildFix{
			Type:        string(fix.Type),
			Path:        fix.Path,
			Description: fix.Description,
		})
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, buildIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
		})
	}

	return nil, output, nil
}
