// Package walker provides traversal of document trees with type-safe
// handlers for each node kind.
//
// The walker visits nodes in document order. Handlers return an Action that
// controls the remainder of the walk:
//
//	err := walker.Walk(result.Tree,
//		walker.WithHeadingHandler(func(wc *walker.WalkContext, n *dom.Node) walker.Action {
//			fmt.Printf("%s %s\n", wc.Path, n.InnerText())
//			return walker.Continue
//		}),
//	)
//
// The generic node handler runs before kind handlers and sees every node:
//
//	_ = walker.Walk(result.Tree,
//		walker.WithNodeHandler(func(wc *walker.WalkContext, n *dom.Node) walker.Action {
//			if wc.Depth > 3 {
//				return walker.SkipChildren
//			}
//			return walker.Continue
//		}),
//	)
//
// WalkContext carries the node's path, depth, and enclosing scope (section
// title, list level, table membership). Collectors built on the walker gather
// common projections: CollectByKind, CollectHeadings, and Outline.
package walker
