// Package dom provides the normalized document tree that podtools produces.
//
// Import path: github.com/erraggy/podtools/dom
//
// One entity type, [Node], is specialized by a closed [Kind] enum: Document,
// Section, Paragraph, Heading, Item, List, Bold, Code, Comment, Entity, Link,
// Reference, Text, Table, Table.Header, Table.Body, Table.Body.Row, and
// Table.Data. Every node carries four navigation links (parent, first/last
// child, previous/next sibling) so consumers can make rendering decisions by
// inspecting a node's neighborhood instead of threading state through
// handlers.
//
// # Navigation Invariants
//
// After every mutation the following hold:
//
//  1. FirstChild is nil iff LastChild is nil.
//  2. Walking NextSibling from FirstChild terminates at LastChild.
//  3. Every child reachable that way has its Parent set to the owning node.
//  4. Adjacent siblings link to each other mutually.
//  5. The root node, and only the root, has a nil Parent.
//
// [Check] verifies the invariants mechanically and is used by tests and
// debug tooling.
//
// # Tree Surgery
//
// All structural mutation goes through the surgery primitives:
// [Node.AppendChild], [ReplaceNode], and [RemoveNode]. Navigation fields are
// unexported, so code outside this package cannot bypass them.
//
// # Inspection
//
// [Node.Dump] renders a stable indented text form used as the golden format
// by tests, the CLI dump command, and the differ. [CollectStats] reports
// node counts, maximum depth, and per-kind counts.
package dom
