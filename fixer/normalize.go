package fixer

import (
	"fmt"

	"github.com/erraggy/podtools/dom"
)

// fixupRoot wraps a root-level Item in a fresh List and returns the new root.
// Any other root is returned unchanged.
func (f *Fixer) fixupRoot(tree *dom.Node, result *FixResult) *dom.Node {
	if tree.Kind() != dom.KindItem {
		return tree
	}
	list := dom.NewList()
	list.AppendChild(tree)
	result.Fixes = append(result.Fixes, Fix{
		Type:        FixTypeWrapRootItem,
		Path:        "$",
		Description: "wrapped root-level item in a list container",
	})
	return list
}

// normalize rewrites every Item under n into a List container. Each child's
// subtree is processed before the child itself, so the deepest items are
// wrapped first. The List is spliced into the Item's position while the
// Item's positional links are still valid, and only then is the Item moved
// under it; doing those two steps in the other order would leave ReplaceNode
// reading pointers that AppendChild already rewrote.
func (f *Fixer) normalize(n *dom.Node, path string, mode ListMode, result *FixResult) {
	idx := 0
	for child := n.FirstChild(); child != nil; idx++ {
		next := child.NextSibling()
		childPath := fmt.Sprintf("%s[%d]", path, idx)

		f.normalize(child, childPath, mode, result)

		// An Item already sitting directly under a List needs no wrapper;
		// without this guard the pass would re-wrap the root fixup's work.
		if child.Kind() == dom.KindItem && n.Kind() != dom.KindList {
			list := dom.NewList()
			dom.ReplaceNode(child, list)
			list.AppendChild(child)
			result.Fixes = append(result.Fixes, Fix{
				Type:        FixTypeWrapItem,
				Path:        childPath,
				Description: fmt.Sprintf("wrapped item (level %d) in a list container", child.Level()),
			})

			if mode == ListModeMerged {
				next = f.mergeRun(list, next, path, &idx, result)
			}
		}

		child = next
	}
}

// mergeRun moves the run of Item siblings starting at next into list,
// normalizing each item's subtree first. It returns the first sibling after
// the run and advances idx past the consumed items.
func (f *Fixer) mergeRun(list *dom.Node, next *dom.Node, path string, idx *int, result *FixResult) *dom.Node {
	for next != nil && next.Kind() == dom.KindItem {
		run := next
		next = next.NextSibling()
		(*idx)++
		runPath := fmt.Sprintf("%s[%d]", path, *idx)

		f.normalize(run, runPath, ListModeMerged, result)
		dom.RemoveNode(run)
		list.AppendChild(run)
		result.Fixes = append(result.Fixes, Fix{
			Type:        FixTypeMergeItems,
			Path:        runPath,
			Description: fmt.Sprintf("merged adjacent item (level %d) into preceding list", run.Level()),
		})
	}
	return next
}
