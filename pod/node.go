package pod

import "strings"

// Node is the interface implemented by every source markup node.
// The node set is closed: the unexported marker method prevents packages
// outside pod from adding variants, so the converter's dispatch is exhaustive
// over the kinds defined here.
type Node interface {
	podNode()
}

// Plain is a literal text run. It is the only non-struct node kind; content
// lists in serialized dumps represent it as a bare string.
type Plain string

func (Plain) podNode() {}

// Para is a prose block.
type Para struct {
	// Contents is the ordered list of child nodes
	Contents []Node
}

func (*Para) podNode() {}

// Code is a verbatim/code block.
type Code struct {
	// Contents is the ordered list of child nodes
	Contents []Node
}

func (*Code) podNode() {}

// Comment is a comment block.
type Comment struct {
	// Contents is the ordered list of child nodes
	Contents []Node
}

func (*Comment) podNode() {}

// Named is a named block. The name "pod" marks the document root; any other
// name converts to a titled section.
type Named struct {
	// Name is the block name (e.g. "pod", "NAME", "SYNOPSIS")
	Name string
	// Contents is the ordered list of child nodes
	Contents []Node
}

func (*Named) podNode() {}

// Heading is a section heading.
type Heading struct {
	// Level is the heading level, 1-based
	Level int
	// Contents is the ordered list of child nodes
	Contents []Node
}

func (*Heading) podNode() {}

// Item is one list entry. The upstream parser emits items without an
// enclosing list container; the fixer package supplies those.
type Item struct {
	// Level is the item nesting level, 1-based
	Level int
	// Contents is the ordered list of child nodes
	Contents []Node
}

func (*Item) podNode() {}

// FormattingCode is an inline span identified by a single-letter type:
// B (bold), C (code), E (character entity), L (link), X (cross-reference).
// Other letters have no dedicated mapping and convert as named sections.
type FormattingCode struct {
	// Type is the single-letter formatting code
	Type string
	// Meta is type-specific metadata; for L it carries the link target
	Meta string
	// Contents is the ordered list of child nodes
	Contents []Node
}

func (*FormattingCode) podNode() {}

// Table is a table block with optional caption, header cells, and body rows.
type Table struct {
	// Caption is the table caption, empty if absent
	Caption string
	// Headers holds one node per header cell
	Headers []Node
	// Rows holds the body rows; each row holds one node per cell
	Rows [][]Node
}

func (*Table) podNode() {}

// Config is a block configuration directive. It deliberately has no
// conversion mapping; feeding one to the converter yields an
// UnrecognizedNodeKindError.
type Config struct {
	// Type is the directive's target type (e.g. "html")
	Type string
	// Config carries the directive's key/value payload
	Config map[string]string
}

func (*Config) podNode() {}

// ContentsText concatenates the Plain text reachable from nodes in order,
// descending into container contents. Formatting codes contribute the text
// of their contents; tables and configs contribute nothing.
func ContentsText(nodes []Node) string {
	var sb strings.Builder
	writeContentsText(&sb, nodes)
	return sb.String()
}

func writeContentsText(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch t := n.(type) {
		case Plain:
			sb.WriteString(string(t))
		case *Para:
			writeContentsText(sb, t.Contents)
		case *Code:
			writeContentsText(sb, t.Contents)
		case *Comment:
			writeContentsText(sb, t.Contents)
		case *Named:
			writeContentsText(sb, t.Contents)
		case *Heading:
			writeContentsText(sb, t.Contents)
		case *Item:
			writeContentsText(sb, t.Contents)
		case *FormattingCode:
			writeContentsText(sb, t.Contents)
		}
	}
}
