// Package pod models the source markup tree that podtools consumes.
//
// Import path: github.com/erraggy/podtools/pod
//
// The upstream Pod markup parser is an external collaborator: podtools never
// parses raw markup syntax. What crosses the boundary is either an in-memory
// [Node] tree built by the caller, or a serialized parse dump (JSON or YAML)
// produced by the upstream parser and ingested here with [Load], [Decode], or
// [DecodeBytes].
//
// # Node Set
//
// The source node set is closed and sealed (the Node interface has an
// unexported marker method):
//
//   - [Plain]: a text run
//   - [Para]: a prose block
//   - [Code]: a verbatim/code block
//   - [Comment]: a comment block
//   - [Named]: a named block; the name "pod" marks the document root
//   - [Heading]: a section heading with a level
//   - [Item]: one list entry with a level
//   - [FormattingCode]: an inline span (B, C, E, L, X, ...)
//   - [Table]: a table with optional caption, header cells, and body rows
//   - [Config]: a block configuration directive (no conversion mapping exists)
//
// # Serialized Dumps
//
// A dump is a JSON or YAML document in which every non-text node is a mapping
// with a "kind" discriminator and content lists are heterogeneous arrays whose
// plain strings decode to [Plain]:
//
//	kind: named
//	name: pod
//	contents:
//	  - kind: para
//	    contents:
//	      - "hello, "
//	      - kind: format
//	        type: B
//	        contents: ["world"]
//
// Format detection prefers the file extension and falls back to content
// sniffing. Malformed dumps produce [poderrors.DecodeError] values carrying
// the dotted node path of the offending element.
package pod
