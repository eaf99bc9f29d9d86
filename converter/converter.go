package converter

import (
	"fmt"
	"io"
	"time"

	"github.com/erraggy/podtools/dom"
	"github.com/erraggy/podtools/fixer"
	"github.com/erraggy/podtools/internal/issues"
	"github.com/erraggy/podtools/internal/severity"
	"github.com/erraggy/podtools/pod"
	"github.com/erraggy/podtools/poderrors"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy conversions or best-effort transformations
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates features that cannot be converted (data loss)
	SeverityCritical = severity.SeverityCritical
)

// ConversionIssue represents a single conversion issue or limitation
type ConversionIssue = issues.Issue

// Result contains the results of building a normalized tree
type Result struct {
	// Tree is the normalized tree root
	Tree *dom.Node
	// SourcePath is the path to the source dump, empty for in-memory input
	SourcePath string
	// SourceFormat is the format of the source dump (JSON or YAML)
	SourceFormat pod.SourceFormat
	// Stats contains statistical information about the tree
	Stats dom.Stats
	// Issues contains all conversion issues
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// Fixes contains the fixes applied by list normalization
	Fixes []fixer.Fix
	// FixCount is the total number of fixes applied
	FixCount int
	// ListMode is the list-wrapping mode the fixer ran with
	ListMode fixer.ListMode
	// BuildTime is the wall-clock duration of the build
	BuildTime time.Duration
	// Success is true if the build completed without errors
	Success bool
}

// HasWarnings returns true if there are any warnings
func (r *Result) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter handles conversion of Pod source trees into normalized dom trees
type Converter struct {
	// ListMode selects per-item or merged list wrapping during
	// normalization. The zero value means fixer.ListModePerItem.
	ListMode fixer.ListMode
	// Normalize controls whether the list-normalization pass runs after
	// conversion. When false the raw converted tree is returned and the
	// root fixup is skipped together with the pass.
	Normalize bool
	// Logger receives structured diagnostics. Defaults to pod.NopLogger.
	Logger pod.Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		ListMode:  fixer.ListModePerItem,
		Normalize: true,
	}
}

func (c *Converter) log() pod.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return pod.NopLogger{}
}

// BuildTree converts a source tree and normalizes it, returning only the
// tree root. This is the minimal pipeline surface: convert, fix a root-level
// item, wrap the remaining items in list containers.
func BuildTree(src pod.Node) (*dom.Node, error) {
	result, err := New().Convert(src)
	if err != nil {
		return nil, err
	}
	return result.Tree, nil
}

// Convert converts an in-memory source tree with the converter's settings.
func (c *Converter) Convert(src pod.Node) (*Result, error) {
	if src == nil {
		return nil, &poderrors.ConfigError{Option: "source", Message: "source node cannot be nil"}
	}

	start := time.Now()
	conv := &conversion{}

	tree, err := conv.convert(src, "$")
	if err != nil {
		// No partial tree is observable by the caller.
		return nil, err
	}

	result := &Result{
		Issues:   conv.issues,
		ListMode: c.ListMode,
	}
	if result.Issues == nil {
		result.Issues = make([]ConversionIssue, 0)
	}

	if c.Normalize {
		f := &fixer.Fixer{ListMode: c.ListMode}
		fixResult, err := f.Fix(tree)
		if err != nil {
			return nil, err
		}
		tree = fixResult.Tree
		result.Fixes = fixResult.Fixes
		result.FixCount = fixResult.FixCount
		result.ListMode = fixResult.ListMode
	}

	result.Tree = tree
	result.Stats = dom.CollectStats(tree)
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	result.BuildTime = time.Since(start)
	result.Success = true

	c.log().Debug("built normalized tree",
		"nodes", result.Stats.NodeCount,
		"depth", result.Stats.MaxDepth,
		"fixes", result.FixCount,
		"issues", len(result.Issues))

	return result, nil
}

// ConvertFile loads a serialized parse dump and converts it.
func (c *Converter) ConvertFile(path string) (*Result, error) {
	d := pod.NewDecoder()
	d.Logger = c.Logger
	src, format, err := d.Load(path)
	if err != nil {
		return nil, fmt.Errorf("converter: failed to load source dump: %w", err)
	}

	result, err := c.Convert(src)
	if err != nil {
		return nil, err
	}
	result.SourcePath = path
	result.SourceFormat = format
	return result, nil
}

// ConvertReader decodes a serialized parse dump from r and converts it.
func (c *Converter) ConvertReader(r io.Reader) (*Result, error) {
	d := pod.NewDecoder()
	d.Logger = c.Logger
	src, format, err := d.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("converter: failed to decode source dump: %w", err)
	}

	result, err := c.Convert(src)
	if err != nil {
		return nil, err
	}
	result.SourceFormat = format
	return result, nil
}
