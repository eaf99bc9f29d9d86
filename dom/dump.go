package dom

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a stable indented text rendering of the tree rooted at n, one
// node per line: the kind's display name followed by its payload attributes.
// The output is the golden format used by tests, the CLI dump command, and
// the differ.
func (n *Node) Dump(w io.Writer) error {
	return n.dump(w, 0)
}

// DumpString renders the tree as a string via Dump.
func (n *Node) DumpString() string {
	var sb strings.Builder
	// strings.Builder writes never fail.
	_ = n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(w io.Writer, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", depth), n.kind, n.dumpAttrs()); err != nil {
		return err
	}
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if err := c.dump(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// dumpAttrs renders the payload attributes for the node's kind, with a
// leading space, or returns the empty string for payload-free kinds.
func (n *Node) dumpAttrs() string {
	switch n.kind {
	case KindSection:
		return fmt.Sprintf(" title=%q", n.title)
	case KindHeading, KindItem:
		return fmt.Sprintf(" level=%d", n.level)
	case KindEntity:
		return fmt.Sprintf(" contents=%q", n.contents)
	case KindLink:
		return fmt.Sprintf(" url=%q", n.url)
	case KindText:
		return fmt.Sprintf(" value=%q", n.value)
	default:
		return ""
	}
}
