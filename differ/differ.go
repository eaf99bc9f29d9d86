package differ

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/erraggy/podtools/dom"
	"github.com/erraggy/podtools/poderrors"
)

// ChangeType categorizes a single detected change.
type ChangeType string

const (
	// ChangeTypeAdded indicates a node present in the target but not the source.
	ChangeTypeAdded ChangeType = "added"
	// ChangeTypeRemoved indicates a node present in the source but not the target.
	ChangeTypeRemoved ChangeType = "removed"
)

// Change represents one line-level difference between two tree dumps.
type Change struct {
	// Type indicates whether the line was added or removed.
	Type ChangeType
	// Text is the dump line, including its indentation.
	Text string
}

// String returns a unified-diff style rendering of the change.
func (c Change) String() string {
	marker := "+"
	if c.Type == ChangeTypeRemoved {
		marker = "-"
	}
	return marker + c.Text
}

// DiffResult contains the results of comparing two document trees.
type DiffResult struct {
	// Equal is true when the two trees render to identical dumps.
	Equal bool
	// Changes contains all detected changes in dump order.
	Changes []Change
	// AddedCount is the number of added lines.
	AddedCount int
	// RemovedCount is the number of removed lines.
	RemovedCount int
	// Patch is a patch in unidiff-like text format transforming the source
	// dump into the target dump. Empty when the trees are equal.
	Patch string
	// SourceStats contains statistical information about the source tree.
	SourceStats dom.Stats
	// TargetStats contains statistical information about the target tree.
	TargetStats dom.Stats
}

// Differ compares document trees by their stable dump rendering.
type Differ struct{}

// New creates a new Differ instance with default settings.
func New() *Differ {
	return &Differ{}
}

// Diff compares two trees and reports line-level changes between their dumps.
func (d *Differ) Diff(source, target *dom.Node) (*DiffResult, error) {
	if source == nil || target == nil {
		return nil, &poderrors.ConfigError{
			Option:  "source/target",
			Message: "both trees must be non-nil",
		}
	}

	sourceDump := source.DumpString()
	targetDump := target.DumpString()

	result := &DiffResult{
		SourceStats: dom.CollectStats(source),
		TargetStats: dom.CollectStats(target),
	}
	if sourceDump == targetDump {
		result.Equal = true
		return result, nil
	}

	// Line-mode diff: map each dump line to a rune, diff the rune strings,
	// then rehydrate the lines.
	dmp := diffpatch.New()
	srcChars, dstChars, lines := dmp.DiffLinesToChars(sourceDump, targetDump)
	diffs := dmp.DiffMain(srcChars, dstChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffInsert:
			for _, line := range splitDumpLines(diff.Text) {
				result.Changes = append(result.Changes, Change{Type: ChangeTypeAdded, Text: line})
				result.AddedCount++
			}
		case diffpatch.DiffDelete:
			for _, line := range splitDumpLines(diff.Text) {
				result.Changes = append(result.Changes, Change{Type: ChangeTypeRemoved, Text: line})
				result.RemovedCount++
			}
		case diffpatch.DiffEqual:
			// Unchanged lines are not reported.
		}
	}

	result.Patch = dmp.PatchToText(dmp.PatchMake(sourceDump, diffs))
	return result, nil
}

// Diff compares two trees with a default Differ.
func Diff(source, target *dom.Node) (*DiffResult, error) {
	return New().Diff(source, target)
}

// splitDumpLines splits a run of dump text into its lines, dropping the
// trailing empty element produced by the final newline.
func splitDumpLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FormatChanges renders changes one per line in unified-diff style.
func FormatChanges(changes []Change) string {
	var sb strings.Builder
	for _, c := range changes {
		fmt.Fprintln(&sb, c.String())
	}
	return sb.String()
}
