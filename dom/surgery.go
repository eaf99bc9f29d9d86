package dom

// AppendChild links child as the last child of n. A nil child is a deliberate
// no-op. The child's own subtree is untouched; only its position changes.
// After the call the navigation invariants hold for n's child chain.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	child.parent = n
	child.nextSibling = nil
	if n.lastChild != nil {
		n.lastChild.nextSibling = child
		child.prevSibling = n.lastChild
		n.lastChild = child
		return
	}
	child.prevSibling = nil
	n.firstChild = child
	n.lastChild = child
}

// ReplaceNode splices repl into the structural position currently occupied by
// old: old's parent and sibling links are copied onto repl, then the
// neighbors that pointed at old are redirected to repl. repl's own children
// are not touched; the caller is responsible for repl already owning whatever
// subtree it should own.
//
// Callers must ensure old's positional pointers are current at call time. If
// old has already been moved (for example appended under repl itself), the
// links read here are stale and the splice would corrupt the tree.
func ReplaceNode(old, repl *Node) {
	repl.parent = old.parent
	repl.prevSibling = old.prevSibling
	repl.nextSibling = old.nextSibling

	if old.parent != nil {
		if old.parent.firstChild == old {
			old.parent.firstChild = repl
		}
		if old.parent.lastChild == old {
			old.parent.lastChild = repl
		}
	}
	if old.prevSibling != nil {
		old.prevSibling.nextSibling = repl
	}
	if old.nextSibling != nil {
		old.nextSibling.prevSibling = repl
	}
}

// RemoveNode detaches n from its owning parent's child chain, repairing the
// parent's first/last pointers and the neighbors' mutual links. n keeps its
// own children. A node with no parent is left unchanged.
func RemoveNode(n *Node) {
	if n == nil || n.parent == nil {
		return
	}
	if n.parent.firstChild == n {
		n.parent.firstChild = n.nextSibling
	}
	if n.parent.lastChild == n {
		n.parent.lastChild = n.prevSibling
	}
	if n.prevSibling != nil {
		n.prevSibling.nextSibling = n.nextSibling
	}
	if n.nextSibling != nil {
		n.nextSibling.prevSibling = n.prevSibling
	}
	n.parent = nil
	n.prevSibling = nil
	n.nextSibling = nil
}
