package walker

import (
	"context"

	"github.com/erraggy/podtools/dom"
)

// WalkContext provides contextual information about the current node being visited.
// It follows the http.Request pattern for context access.
type WalkContext struct {
	// Path is the bracketed child-index path to the current node.
	// Always populated. Example: "$[2][0]"
	Path string

	// Depth is the distance from the walk root. The root is depth 0.
	Depth int

	// Index is the current node's position among its siblings.
	// Zero for the walk root.
	Index int

	// SectionTitle is the title of the nearest enclosing Section, or the
	// empty string outside any section.
	SectionTitle string

	// ListLevel is the item level of the nearest enclosing List scope.
	// Zero outside any list.
	ListLevel int

	// InTable is true when the current node is inside a Table subtree.
	InTable bool

	ctx context.Context
}

// Context returns the context.Context for cancellation and deadline propagation.
// Returns context.Background() if no context was set.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// InListScope returns true if currently walking within a List.
func (wc *WalkContext) InListScope() bool {
	return wc.ListLevel > 0
}

// InSectionScope returns true if currently walking within a titled Section.
func (wc *WalkContext) InSectionScope() bool {
	return wc.SectionTitle != ""
}

// walkState tracks scope as we descend through the tree.
// This is internal to the walker and used to build WalkContext instances.
type walkState struct {
	sectionTitle string
	listLevel    int
	inTable      bool
	ctx          context.Context
}

// buildContext creates a WalkContext from the current walk state.
func (s *walkState) buildContext(path string, depth, index int, n *dom.Node) *WalkContext {
	return &WalkContext{
		Path:         path,
		Depth:        depth,
		Index:        index,
		SectionTitle: s.sectionTitle,
		ListLevel:    s.listLevel,
		InTable:      s.inTable || n.Kind() == dom.KindTable,
		ctx:          s.ctx,
	}
}

// descend returns the walk state for n's children, updating scope when n
// opens a section, list, or table.
func (s *walkState) descend(n *dom.Node) *walkState {
	next := *s
	switch n.Kind() {
	case dom.KindSection:
		next.sectionTitle = n.Title()
	case dom.KindList:
		// Level lives on the Item children; a bare List counts as level 1.
		next.listLevel = 1
		if item := n.FirstChild(); item != nil && item.Kind() == dom.KindItem && item.Level() > 0 {
			next.listLevel = item.Level()
		}
	case dom.KindTable:
		next.inTable = true
	}
	return &next
}
