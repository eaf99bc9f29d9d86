package dom

import "fmt"

// Check verifies the navigation invariants over the whole tree rooted at
// root and returns the first violation found, or nil if the tree is well
// formed. It is intended for tests and debug tooling; library code maintains
// the invariants by construction.
func Check(root *Node) error {
	if root == nil {
		return fmt.Errorf("dom: nil root")
	}
	if root.parent != nil {
		return fmt.Errorf("dom: root %s has a parent", root.kind)
	}
	seen := make(map[*Node]bool)
	return checkNode(root, seen)
}

func checkNode(n *Node, seen map[*Node]bool) error {
	if seen[n] {
		return fmt.Errorf("dom: node %s reachable twice (shared or cyclic subtree)", n.kind)
	}
	seen[n] = true

	if (n.firstChild == nil) != (n.lastChild == nil) {
		return fmt.Errorf("dom: node %s has firstChild/lastChild mismatch", n.kind)
	}
	if n.firstChild == nil {
		return nil
	}
	if n.firstChild.prevSibling != nil {
		return fmt.Errorf("dom: first child of %s has a previous sibling", n.kind)
	}

	var prev *Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if c.parent != n {
			return fmt.Errorf("dom: child %s of %s has wrong parent", c.kind, n.kind)
		}
		if c.prevSibling != prev {
			return fmt.Errorf("dom: child %s of %s has broken prevSibling link", c.kind, n.kind)
		}
		if prev != nil && prev.nextSibling != c {
			return fmt.Errorf("dom: sibling chain under %s is not mutual", n.kind)
		}
		if c.nextSibling == nil && n.lastChild != c {
			return fmt.Errorf("dom: sibling chain under %s does not terminate at lastChild", n.kind)
		}
		if err := checkNode(c, seen); err != nil {
			return err
		}
		prev = c
	}
	return nil
}
