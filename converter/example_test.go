package converter_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/erraggy/podtools/converter"
	"github.com/erraggy/podtools/fixer"
	"github.com/erraggy/podtools/pod"
)

// Example demonstrates building a normalized tree from a serialized parse dump.
func Example() {
	dump := `{
  "kind": "named",
  "name": "pod",
  "contents": [
    {"kind": "heading", "level": 1, "contents": ["NAME"]},
    {"kind": "item", "level": 1, "contents": ["first"]},
    {"kind": "item", "level": 1, "contents": ["second"]}
  ]
}`

	result, err := converter.ConvertWithOptions(
		converter.WithReader(strings.NewReader(dump)),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Nodes: %d\n", result.Stats.NodeCount)
	fmt.Printf("Applied %d fix(es)\n", result.FixCount)
	for _, fix := range result.Fixes {
		fmt.Printf("  %s at %s\n", fix.Type, fix.Path)
	}

	// Output:
	// Nodes: 9
	// Applied 2 fix(es)
	//   wrap-item at $[1]
	//   wrap-item at $[2]
}

// ExampleBuildTree demonstrates converting a source tree held in memory.
func ExampleBuildTree() {
	src := &pod.Named{Name: "pod", Contents: []pod.Node{
		&pod.Para{Contents: []pod.Node{pod.Plain("hello")}},
	}}

	tree, err := converter.BuildTree(src)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(tree.DumpString())
	// Output:
	// Document
	//   Paragraph
	//     Text value="hello"
}

// ExampleConvertWithOptions_merged demonstrates merged list wrapping, where a
// run of adjacent items shares one list container.
func ExampleConvertWithOptions_merged() {
	dump := `{
  "kind": "named",
  "name": "pod",
  "contents": [
    {"kind": "item", "level": 1, "contents": ["first"]},
    {"kind": "item", "level": 1, "contents": ["second"]}
  ]
}`

	result, err := converter.ConvertWithOptions(
		converter.WithReader(strings.NewReader(dump)),
		converter.WithListMode(fixer.ListModeMerged),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(result.Tree.DumpString())
	// Output:
	// Document
	//   List
	//     Item level=1
	//       Text value="first"
	//     Item level=1
	//       Text value="second"
}
