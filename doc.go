// Package podtools provides tools for working with parsed Pod documentation-markup trees.
//
// podtools takes an already-parsed Pod markup tree (interchanged as a serialized
// parse dump in JSON or YAML) and converts it into a normalized document tree
// with explicit parent/sibling/child navigation, then applies a structural
// normalization pass so that list-item semantics are represented by explicit
// list-container nodes. Renderers walk the normalized tree and make decisions
// by inspecting a node's parent, without threading state flags through every
// node-type handler.
//
// # Overview
//
// The library consists of six primary packages:
//
//   - pod: the source markup-tree model and serialized-dump ingest
//   - dom: the normalized document tree, its navigation invariants, and tree surgery
//   - converter: convert a pod tree into a dom tree (the build pipeline entry point)
//   - fixer: the list-normalization pass that wraps items in list containers
//   - walker: typed-handler traversal of normalized trees with collectors
//   - differ: structural comparison of two normalized trees
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/podtools
//
// # Quick Start
//
// Build a normalized tree from a serialized parse dump:
//
//	import "github.com/erraggy/podtools/converter"
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("perldoc.pod.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Nodes: %d\n", result.Stats.NodeCount)
//
// Convert a source tree you already hold in memory:
//
//	import (
//		"github.com/erraggy/podtools/converter"
//		"github.com/erraggy/podtools/pod"
//	)
//
//	src := &pod.Named{Name: "pod", Contents: []pod.Node{
//		&pod.Para{Contents: []pod.Node{pod.Plain("hello")}},
//	}}
//	tree, err := converter.BuildTree(src)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(tree.FirstChild().Kind()) // Paragraph
//
// Walk a normalized tree:
//
//	import "github.com/erraggy/podtools/walker"
//
//	err = walker.Walk(tree,
//		walker.WithHeadingHandler(func(wc *walker.WalkContext, n *dom.Node) walker.Action {
//			fmt.Printf("h%d %s\n", n.Level(), n.InnerText())
//			return walker.Continue
//		}),
//	)
//
// Diff two normalized trees:
//
//	import "github.com/erraggy/podtools/differ"
//
//	diff, err := differ.Diff(oldTree, newTree)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !diff.Equal {
//		fmt.Println(diff.Patch)
//	}
//
// # Tree Model
//
// The dom package defines one entity type, [dom.Node], specialized by a closed
// [dom.Kind] enum (Document, Section, Paragraph, Heading, Item, List, Bold,
// Code, Comment, Entity, Link, Reference, Text, Table and its row/cell kinds).
// Navigation fields are unexported; all structural mutation goes through the
// surgery primitives AppendChild, ReplaceNode, and RemoveNode, which preserve
// the doubly-linked sibling chain and parent back-references.
//
// # Command Line Tool
//
// The podtools CLI mirrors the library surface:
//
//	podtools build perldoc.pod.json
//	podtools outline perldoc.pod.json
//	podtools dump --color perldoc.pod.json
//	podtools diff old.pod.json new.pod.json
//	podtools mcp
//
// # Versioning
//
// podtools follows semantic versioning. The [Version], [Commit], and
// [BuildTime] functions report build metadata injected at release time.
package podtools
