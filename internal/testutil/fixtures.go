// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/podtools/pod"
)

// NewSimpleDocument creates a minimal parsed document for testing.
// Contains a root "pod" block with a single paragraph of plain text.
func NewSimpleDocument() pod.Node {
	return &pod.Named{
		Name: "pod",
		Contents: []pod.Node{
			&pod.Para{Contents: []pod.Node{pod.Plain("Hello, world.")}},
		},
	}
}

// NewDetailedDocument creates a parsed document with common features for testing.
// Includes a heading, a paragraph with formatting codes, and a run of items.
func NewDetailedDocument() pod.Node {
	return &pod.Named{
		Name: "pod",
		Contents: []pod.Node{
			&pod.Heading{Level: 1, Contents: []pod.Node{pod.Plain("NAME")}},
			&pod.Para{Contents: []pod.Node{
				pod.Plain("See "),
				&pod.FormattingCode{Type: "L", Meta: "https://example.com", Contents: []pod.Node{pod.Plain("the docs")}},
				pod.Plain(" for "),
				&pod.FormattingCode{Type: "B", Contents: []pod.Node{pod.Plain("details")}},
				pod.Plain("."),
			}},
			&pod.Item{Level: 1, Contents: []pod.Node{pod.Plain("first")}},
			&pod.Item{Level: 1, Contents: []pod.Node{pod.Plain("second")}},
		},
	}
}

// NewItemDocument creates a parsed document whose root is a bare item.
// Useful for exercising root list normalization.
func NewItemDocument() pod.Node {
	return &pod.Item{Level: 1, Contents: []pod.Node{pod.Plain("only")}}
}

// NewTableDocument creates a parsed document containing a two-column table
// with one body row.
func NewTableDocument() pod.Node {
	return &pod.Named{
		Name: "pod",
		Contents: []pod.Node{
			&pod.Table{
				Headers: []pod.Node{pod.Plain("name"), pod.Plain("score")},
				Rows: [][]pod.Node{
					{pod.Plain("alice"), pod.Plain("10")},
				},
			},
		},
	}
}

// WriteTempJSON writes JSON document source to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, source string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, []byte(source), 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}

// WriteTempYAML writes YAML document source to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, source string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, []byte(source), 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}
