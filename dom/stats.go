package dom

// Stats contains statistical information about a normalized tree.
type Stats struct {
	// NodeCount is the total number of nodes in the tree
	NodeCount int
	// MaxDepth is the depth of the deepest node; the root is at depth 0
	MaxDepth int
	// KindCounts maps each kind present in the tree to its occurrence count
	KindCounts map[Kind]int
}

// CollectStats walks the tree rooted at root and returns its statistics.
// A nil root yields zero stats.
func CollectStats(root *Node) Stats {
	stats := Stats{KindCounts: make(map[Kind]int)}
	if root == nil {
		return stats
	}
	collectStats(root, 0, &stats)
	return stats
}

func collectStats(n *Node, depth int, stats *Stats) {
	stats.NodeCount++
	stats.KindCounts[n.kind]++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	for c := n.firstChild; c != nil; c = c.nextSibling {
		collectStats(c, depth+1, stats)
	}
}
