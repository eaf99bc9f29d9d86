package dom

import (
	"fmt"
	"strings"
)

// Kind identifies the semantic role of a Node.
type Kind int

const (
	// KindDocument is the whole-document root.
	KindDocument Kind = iota
	// KindSection is a named block other than the document root.
	KindSection
	// KindParagraph is a prose block.
	KindParagraph
	// KindHeading is a section heading with a level.
	KindHeading
	// KindItem is one list entry. After normalization every Item lives
	// directly under a List.
	KindItem
	// KindList is a list container created by the fixer.
	KindList
	// KindBold is an inline bold span.
	KindBold
	// KindCode is a code block or inline code span.
	KindCode
	// KindComment is a comment block.
	KindComment
	// KindEntity is a literal character-entity text span.
	KindEntity
	// KindLink is a hyperlink span.
	KindLink
	// KindReference is a cross-reference span.
	KindReference
	// KindText is a leaf text run.
	KindText
	// KindTable is a table container.
	KindTable
	// KindTableHeader is the header-row container of a table.
	KindTableHeader
	// KindTableBody is the body-rows container of a table.
	KindTableBody
	// KindTableRow is one body row.
	KindTableRow
	// KindTableData is one cell.
	KindTableData
)

// kindNames maps each Kind to its dotted display name.
var kindNames = [...]string{
	KindDocument:    "Document",
	KindSection:     "Section",
	KindParagraph:   "Paragraph",
	KindHeading:     "Heading",
	KindItem:        "Item",
	KindList:        "List",
	KindBold:        "Bold",
	KindCode:        "Code",
	KindComment:     "Comment",
	KindEntity:      "Entity",
	KindLink:        "Link",
	KindReference:   "Reference",
	KindText:        "Text",
	KindTable:       "Table",
	KindTableHeader: "Table.Header",
	KindTableBody:   "Table.Body",
	KindTableRow:    "Table.Body.Row",
	KindTableData:   "Table.Data",
}

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	return k >= KindDocument && int(k) < len(kindNames)
}

// String returns the dotted display name of the kind.
func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// ParseKind parses a dotted display name back into a Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("dom: invalid kind %d", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("dom: unknown kind %q", text)
	}
	*k = parsed
	return nil
}

// Node is the single entity type of the normalized tree. Its navigation and
// payload fields are unexported: construction goes through the per-kind
// constructors and structural mutation through AppendChild and ReplaceNode,
// so the navigation invariants cannot be broken from outside the package.
type Node struct {
	kind Kind

	parent      *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	// Payload fields; which one is meaningful depends on kind.
	title    string // Section
	level    int    // Heading, Item
	contents string // Entity
	url      string // Link
	value    string // Text
}

// NewDocument creates a Document node.
func NewDocument() *Node { return &Node{kind: KindDocument} }

// NewSection creates a Section node carrying the block's name as title.
func NewSection(title string) *Node { return &Node{kind: KindSection, title: title} }

// NewParagraph creates a Paragraph node.
func NewParagraph() *Node { return &Node{kind: KindParagraph} }

// NewHeading creates a Heading node with the given level.
func NewHeading(level int) *Node { return &Node{kind: KindHeading, level: level} }

// NewItem creates an Item node with the given level.
func NewItem(level int) *Node { return &Node{kind: KindItem, level: level} }

// NewList creates a List container node.
func NewList() *Node { return &Node{kind: KindList} }

// NewBold creates a Bold span node.
func NewBold() *Node { return &Node{kind: KindBold} }

// NewCode creates a Code node.
func NewCode() *Node { return &Node{kind: KindCode} }

// NewComment creates a Comment node.
func NewComment() *Node { return &Node{kind: KindComment} }

// NewEntity creates an Entity node carrying literal character-entity text.
func NewEntity(contents string) *Node { return &Node{kind: KindEntity, contents: contents} }

// NewLink creates a Link node carrying the target URL or reference.
func NewLink(url string) *Node { return &Node{kind: KindLink, url: url} }

// NewReference creates a Reference span node.
func NewReference() *Node { return &Node{kind: KindReference} }

// NewText creates a Text leaf carrying the given value.
func NewText(value string) *Node { return &Node{kind: KindText, value: value} }

// NewTable creates a Table container node.
func NewTable() *Node { return &Node{kind: KindTable} }

// NewTableHeader creates a Table.Header row container.
func NewTableHeader() *Node { return &Node{kind: KindTableHeader} }

// NewTableBody creates a Table.Body rows container.
func NewTableBody() *Node { return &Node{kind: KindTableBody} }

// NewTableRow creates a Table.Body.Row node.
func NewTableRow() *Node { return &Node{kind: KindTableRow} }

// NewTableData creates a Table.Data cell node.
func NewTableData() *Node { return &Node{kind: KindTableData} }

// Kind returns the node's kind.
func (n *Node) Kind() Kind { return n.kind }

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// FirstChild returns the first child, or nil if the node has no children.
func (n *Node) FirstChild() *Node { return n.firstChild }

// LastChild returns the last child, or nil if the node has no children.
func (n *Node) LastChild() *Node { return n.lastChild }

// PrevSibling returns the previous sibling within the owning parent's chain.
func (n *Node) PrevSibling() *Node { return n.prevSibling }

// NextSibling returns the next sibling within the owning parent's chain.
func (n *Node) NextSibling() *Node { return n.nextSibling }

// Title returns the Section title. Empty for other kinds.
func (n *Node) Title() string { return n.title }

// Level returns the Heading or Item level. Zero for other kinds.
func (n *Node) Level() int { return n.level }

// Contents returns the Entity's literal text. Empty for other kinds.
func (n *Node) Contents() string { return n.contents }

// URL returns the Link target. Empty for other kinds.
func (n *Node) URL() string { return n.url }

// Value returns the Text value. Empty for other kinds.
func (n *Node) Value() string { return n.value }

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool { return n.firstChild == nil }

// IsBranch returns true if the node has at least one child.
func (n *Node) IsBranch() bool { return n.firstChild != nil }

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for c := n.firstChild; c != nil; c = c.nextSibling {
		count++
	}
	return count
}

// Children returns a snapshot slice of the direct children in order.
// Mutating the tree invalidates neither the slice nor its elements, but the
// slice stops reflecting the tree.
func (n *Node) Children() []*Node {
	var children []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		children = append(children, c)
	}
	return children
}

// Root walks Parent links to the tree root and returns it.
func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// InnerText concatenates the values of all Text descendants in document
// order, including the node's own value when it is a Text. Entity contents
// are included as literal text.
func (n *Node) InnerText() string {
	var sb strings.Builder
	n.writeInnerText(&sb)
	return sb.String()
}

func (n *Node) writeInnerText(sb *strings.Builder) {
	switch n.kind {
	case KindText:
		sb.WriteString(n.value)
	case KindEntity:
		sb.WriteString(n.contents)
	}
	for c := n.firstChild; c != nil; c = c.nextSibling {
		c.writeInnerText(sb)
	}
}
