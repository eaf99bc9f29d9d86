package walker

import (
	"strings"

	"github.com/erraggy/podtools/dom"
)

// CollectByKind walks the tree and returns all nodes of the given kind in
// document order.
func CollectByKind(tree *dom.Node, kind dom.Kind) ([]*dom.Node, error) {
	var nodes []*dom.Node
	err := Walk(tree,
		WithKindHandler(kind, func(_ *WalkContext, n *dom.Node) Action {
			nodes = append(nodes, n)
			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// HeadingInfo contains information about a collected heading.
type HeadingInfo struct {
	// Level is the heading level, 1 being the topmost.
	Level int

	// Text is the concatenated text content of the heading.
	Text string

	// Path is the bracketed child-index path to the heading node.
	Path string
}

// CollectHeadings walks the tree and collects all headings in document
// order. Titled sections contribute a level 1 entry so an outline built from
// the result covers both heading styles.
func CollectHeadings(tree *dom.Node) ([]HeadingInfo, error) {
	var headings []HeadingInfo
	err := Walk(tree,
		WithHeadingHandler(func(wc *WalkContext, n *dom.Node) Action {
			headings = append(headings, HeadingInfo{
				Level: n.Level(),
				Text:  n.InnerText(),
				Path:  wc.Path,
			})
			return Continue
		}),
		WithSectionHandler(func(wc *WalkContext, n *dom.Node) Action {
			headings = append(headings, HeadingInfo{
				Level: 1,
				Text:  n.Title(),
				Path:  wc.Path,
			})
			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}
	return headings, nil
}

// OutlineEntry is one node of a document outline tree.
type OutlineEntry struct {
	// Heading describes the heading or section the entry was built from.
	Heading HeadingInfo

	// Children are the entries nested under this one.
	Children []*OutlineEntry
}

// Outline builds a nested outline from the tree's headings and sections.
// Entries nest by heading level; a heading at level n becomes a child of the
// most recent heading at a lower level.
func Outline(tree *dom.Node) ([]*OutlineEntry, error) {
	headings, err := CollectHeadings(tree)
	if err != nil {
		return nil, err
	}

	var roots []*OutlineEntry
	var stack []*OutlineEntry
	for _, h := range headings {
		entry := &OutlineEntry{Heading: h}

		for len(stack) > 0 && stack[len(stack)-1].Heading.Level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, entry)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, entry)
		}
		stack = append(stack, entry)
	}
	return roots, nil
}

// FormatOutline renders an outline as indented text, one entry per line.
func FormatOutline(entries []*OutlineEntry) string {
	var sb strings.Builder
	formatOutline(&sb, entries, 0)
	return sb.String()
}

func formatOutline(sb *strings.Builder, entries []*OutlineEntry, depth int) {
	for _, e := range entries {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(e.Heading.Text)
		sb.WriteByte('\n')
		formatOutline(sb, e.Children, depth+1)
	}
}
