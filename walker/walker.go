package walker

import (
	"fmt"

	"github.com/erraggy/podtools/dom"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// NodeHandler is called for each visited node with its walk context.
type NodeHandler func(wc *WalkContext, n *dom.Node) Action

// PostNodeHandler is called after a node's children have been visited.
// Post handlers observe but cannot redirect the walk.
type PostNodeHandler func(wc *WalkContext, n *dom.Node)

// Walker traverses document trees and calls handlers for each node.
type Walker struct {
	onNode     NodeHandler
	onKind     map[dom.Kind]NodeHandler
	onNodePost PostNodeHandler

	maxDepth int

	stopped bool
}

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{
		maxDepth: 100,
	}
}

// Walk traverses the tree in document order and calls registered handlers
// for each node. The generic node handler runs before any kind handler.
func Walk(tree *dom.Node, opts ...Option) error {
	if tree == nil {
		return fmt.Errorf("walker: nil tree")
	}

	w := New()
	state := &walkState{}
	for _, opt := range opts {
		opt(w, state)
	}

	w.stopped = false
	w.visit(tree, "$", 0, 0, state)
	return nil
}

// visit dispatches handlers for n and recurses into its children.
func (w *Walker) visit(n *dom.Node, path string, depth, index int, state *walkState) {
	if w.stopped {
		return
	}

	wc := state.buildContext(path, depth, index, n)

	descend := true
	if w.onNode != nil {
		descend = w.handleAction(w.onNode(wc, n))
	}
	if !w.stopped && descend && w.onKind != nil {
		if fn, ok := w.onKind[n.Kind()]; ok {
			descend = w.handleAction(fn(wc, n))
		}
	}

	if descend && depth < w.maxDepth {
		childState := state.descend(n)
		idx := 0
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if w.stopped {
				return
			}
			w.visit(c, fmt.Sprintf("%s[%d]", path, idx), depth+1, idx, childState)
			idx++
		}
	}

	if !w.stopped && w.onNodePost != nil {
		w.onNodePost(wc, n)
	}
}

// handleAction processes the action returned by a handler.
// Returns true if walking should continue to children.
func (w *Walker) handleAction(action Action) bool {
	switch action {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	default:
		return true
	}
}
