package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDumpYAML = `kind: named
name: pod
contents:
  - kind: heading
    level: 1
    contents:
      - NAME
  - kind: para
    contents:
      - greet - say hello
  - kind: item
    level: 1
    contents:
      - first
  - kind: item
    level: 1
    contents:
      - second
`

func TestBuildTool(t *testing.T) {
	docCache.reset()
	input := buildInput{
		Doc: docInput{Content: testDumpYAML},
	}
	result, output, err := handleBuild(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result, "Success returns no error result")

	assert.Equal(t, "per-item", output.ListMode)
	assert.Equal(t, 2, output.FixCount, "Both items get wrapped")
	require.Len(t, output.Fixes, 2)
	assert.Equal(t, "wrap-item", output.Fixes[0].Type)
	assert.Equal(t, 2, output.KindCounts["List"])
	assert.Equal(t, 2, output.KindCounts["Item"])
	assert.Equal(t, 1, output.KindCounts["Document"])
	assert.Equal(t, 3, output.MaxDepth)
	assert.Zero(t, output.WarningCount)
}

func TestBuildTool_MergedListMode(t *testing.T) {
	docCache.reset()
	input := buildInput{
		Doc:      docInput{Content: testDumpYAML},
		ListMode: "merged",
	}
	result, output, err := handleBuild(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "merged", output.ListMode)
	assert.Equal(t, 1, output.KindCounts["List"], "Adjacent items share one list")
	assert.Equal(t, 2, output.KindCounts["Item"])
}

func TestBuildTool_InvalidListMode(t *testing.T) {
	input := buildInput{
		Doc:      docInput{Content: testDumpYAML},
		ListMode: "grouped",
	}
	result, _, err := handleBuild(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestBuildTool_BadInput(t *testing.T) {
	tests := []struct {
		name string
		doc  docInput
	}{
		{"no input", docInput{}},
		{"both inputs", docInput{File: "x.json", Content: "{}"}},
		{"unrecognized kind", docInput{Content: `{"kind":"config","type":"html"}`}},
		{"invalid yaml", docInput{Content: "kind: [unclosed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleBuild(context.Background(), &mcp.CallToolRequest{}, buildInput{Doc: tt.doc})
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestOutlineTool(t *testing.T) {
	docCache.reset()
	input := outlineInput{
		Doc: docInput{Content: testDumpYAML},
	}
	result, output, err := handleOutline(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	require.Len(t, output.Entries, 1)
	assert.Equal(t, "Name", output.Entries[0].Title, "Semantic names are title-cased")
	assert.Equal(t, 1, output.Entries[0].Level)
	assert.Equal(t, 0, output.Entries[0].Depth)
	assert.False(t, output.Truncated)
}

func TestOutlineTool_NestedDepths(t *testing.T) {
	docCache.reset()
	nested := `{"kind":"named","name":"pod","contents":[
		{"kind":"heading","level":1,"contents":["Top"]},
		{"kind":"heading","level":2,"contents":["Nested"]}]}`

	input := outlineInput{
		Doc: docInput{Content: nested},
		Raw: true,
	}
	result, output, err := handleOutline(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	// Nesting is flattened into depth values, document order preserved.
	require.Len(t, output.Entries, 2)
	assert.Equal(t, "Top", output.Entries[0].Title)
	assert.Equal(t, 0, output.Entries[0].Depth)
	assert.Equal(t, "Nested", output.Entries[1].Title)
	assert.Equal(t, 1, output.Entries[1].Depth)
	assert.False(t, output.Truncated)
}

func TestOutlineTool_Raw(t *testing.T) {
	docCache.reset()
	input := outlineInput{
		Doc: docInput{Content: testDumpYAML},
		Raw: true,
	}
	result, output, err := handleOutline(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	require.Len(t, output.Entries, 1)
	assert.Equal(t, "NAME", output.Entries[0].Title)
}

func TestOutlineTool_DepthTruncation(t *testing.T) {
	docCache.reset()
	nested := `{"kind":"named","name":"pod","contents":[
		{"kind":"heading","level":1,"contents":["Top"]},
		{"kind":"heading","level":2,"contents":["Nested"]}]}`

	input := outlineInput{
		Doc:   docInput{Content: nested},
		Depth: 1,
		Raw:   true,
	}
	result, output, err := handleOutline(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	require.Len(t, output.Entries, 1)
	assert.Equal(t, "Top", output.Entries[0].Title)
	assert.True(t, output.Truncated)
}

func TestDumpTool(t *testing.T) {
	docCache.reset()
	input := dumpInput{
		Doc: docInput{Content: testDumpYAML},
	}
	result, output, err := handleDump(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Contains(t, output.Dump, "Document\n")
	assert.Contains(t, output.Dump, `Text value="first"`)
	assert.Equal(t, output.TotalLines, output.LineCount)
	assert.False(t, output.Truncated)
}

func TestDumpTool_MaxLines(t *testing.T) {
	docCache.reset()
	input := dumpInput{
		Doc:      docInput{Content: testDumpYAML},
		MaxLines: 3,
	}
	result, output, err := handleDump(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 3, output.LineCount)
	assert.Greater(t, output.TotalLines, 3)
	assert.True(t, output.Truncated)
}

func TestDiffTool(t *testing.T) {
	docCache.reset()
	input := diffInput{
		Source: docInput{Content: `{"kind":"para","contents":["one"]}`},
		Target: docInput{Content: `{"kind":"para","contents":["two"]}`},
	}
	result, output, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.False(t, output.Equal)
	assert.Equal(t, 1, output.AddedCount)
	assert.Equal(t, 1, output.RemovedCount)
	require.Len(t, output.Changes, 2)
	assert.NotEmpty(t, output.Patch)
}

func TestDiffTool_Equal(t *testing.T) {
	docCache.reset()
	input := diffInput{
		Source: docInput{Content: testDumpYAML},
		Target: docInput{Content: testDumpYAML},
	}
	result, output, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.True(t, output.Equal)
	assert.Empty(t, output.Changes)
	assert.Empty(t, output.Patch)
}

func TestDiffTool_MissingSide(t *testing.T) {
	input := diffInput{
		Source: docInput{Content: `{"kind":"para"}`},
	}
	result, _, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
