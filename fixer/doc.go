// Package fixer provides the list-normalization pass for normalized trees.
//
// Import path: github.com/erraggy/podtools/fixer
//
// The upstream Pod parser emits list entries as bare Item nodes with no
// enclosing list container. The fixer rewrites a converted tree so that every
// Item lives directly under a List node, which lets a renderer emit a single
// list wrapper and suppress per-item paragraph wrapping by checking a node's
// parent alone.
//
// Two rewrites run once, in order:
//
//  1. Root fixup: a tree whose root is itself an Item is wrapped in a fresh
//     List, which becomes the new root.
//  2. Normalization: a depth-first pass wraps every remaining Item in a List
//     spliced into the Item's former position. Each child's subtree is
//     processed before the child itself, so the deepest items are wrapped
//     first.
//
// # List Modes
//
// [ListModePerItem] (the default) gives every Item its own singleton List:
// two adjacent Items become two sibling Lists. [ListModeMerged] coalesces a
// run of adjacent Item siblings into one shared List.
//
// # Usage
//
//	result, err := fixer.FixWithOptions(
//	    fixer.WithTree(tree),
//	    fixer.WithListMode(fixer.ListModeMerged),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tree = result.Tree
//	for _, fix := range result.Fixes {
//	    fmt.Println(fix.Description)
//	}
//
// All operations are total over well-formed trees; the only error surface is
// configuration (nil tree, unknown list mode).
package fixer
