package fixer

import (
	"fmt"

	"github.com/erraggy/podtools/dom"
	"github.com/erraggy/podtools/poderrors"
)

// ListMode selects how adjacent Item siblings are wrapped in List containers.
type ListMode string

const (
	// ListModePerItem wraps every Item in its own singleton List.
	// Two adjacent Items become two sibling Lists. This is the default.
	ListModePerItem ListMode = "per-item"

	// ListModeMerged coalesces a run of adjacent Item siblings into one
	// shared List.
	ListModeMerged ListMode = "merged"
)

// IsValid returns true if the mode is one of the defined constants.
// The empty string is valid and means ListModePerItem.
func (m ListMode) IsValid() bool {
	return m == "" || m == ListModePerItem || m == ListModeMerged
}

// FixType identifies the type of fix applied
type FixType string

const (
	// FixTypeWrapRootItem indicates a root-level Item was wrapped in a List
	FixTypeWrapRootItem FixType = "wrap-root-item"
	// FixTypeWrapItem indicates an Item was wrapped in a List
	FixTypeWrapItem FixType = "wrap-item"
	// FixTypeMergeItems indicates an Item was merged into the preceding
	// sibling's List (ListModeMerged only)
	FixTypeMergeItems FixType = "merge-items"
)

// Fix represents a single fix applied to the tree
type Fix struct {
	// Type identifies the category of fix
	Type FixType
	// Path is the bracketed child-index path to the fixed position (e.g., "$[0][2]")
	Path string
	// Description is a human-readable description of the fix
	Description string
}

// FixResult contains the results of a fix operation
type FixResult struct {
	// Tree is the normalized tree; its root may differ from the input root
	// when a root-level Item was wrapped
	Tree *dom.Node
	// Fixes contains all fixes applied
	Fixes []Fix
	// FixCount is the total number of fixes applied
	FixCount int
	// ListMode is the mode the pass ran with
	ListMode ListMode
	// Success is true if fixing completed without errors
	Success bool
}

// HasFixes returns true if any fixes were applied
func (r *FixResult) HasFixes() bool {
	return r.FixCount > 0
}

// Fixer handles list normalization of converted trees
type Fixer struct {
	// ListMode selects per-item or merged wrapping. The zero value means
	// ListModePerItem.
	ListMode ListMode
}

// New creates a new Fixer instance with default settings
func New() *Fixer {
	return &Fixer{
		ListMode: ListModePerItem,
	}
}

// Option is a function that configures a fix operation
type Option func(*fixConfig) error

// fixConfig holds configuration for a fix operation
type fixConfig struct {
	// Input source (exactly one must be set)
	tree *dom.Node

	// Configuration options
	listMode ListMode
}

// FixWithOptions normalizes a converted tree using functional options.
//
// Example:
//
//	result, err := fixer.FixWithOptions(
//	    fixer.WithTree(tree),
//	    fixer.WithListMode(fixer.ListModeMerged),
//	)
func FixWithOptions(opts ...Option) (*FixResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("fixer: invalid options: %w", err)
	}

	f := &Fixer{ListMode: cfg.listMode}
	return f.Fix(cfg.tree)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*fixConfig, error) {
	cfg := &fixConfig{
		listMode: ListModePerItem,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.tree == nil {
		return nil, &poderrors.ConfigError{Option: "WithTree", Message: "no input tree specified"}
	}

	return cfg, nil
}

// WithTree specifies the converted tree to normalize
func WithTree(tree *dom.Node) Option {
	return func(cfg *fixConfig) error {
		if tree == nil {
			return &poderrors.ConfigError{Option: "WithTree", Message: "tree cannot be nil"}
		}
		cfg.tree = tree
		return nil
	}
}

// WithListMode selects per-item or merged list wrapping
func WithListMode(mode ListMode) Option {
	return func(cfg *fixConfig) error {
		if !mode.IsValid() {
			return &poderrors.ConfigError{Option: "WithListMode", Message: fmt.Sprintf("unknown list mode: %s", mode)}
		}
		if mode == "" {
			mode = ListModePerItem
		}
		cfg.listMode = mode
		return nil
	}
}

// Fix normalizes the tree rooted at tree and returns the result. The input
// tree is mutated in place; the returned Tree is the (possibly new) root.
func (f *Fixer) Fix(tree *dom.Node) (*FixResult, error) {
	if tree == nil {
		return nil, &poderrors.ConfigError{Option: "tree", Message: "tree cannot be nil"}
	}
	if !f.ListMode.IsValid() {
		return nil, &poderrors.ConfigError{Option: "ListMode", Message: fmt.Sprintf("unknown list mode: %s", f.ListMode)}
	}

	mode := f.ListMode
	if mode == "" {
		mode = ListModePerItem
	}

	result := &FixResult{
		Fixes:    make([]Fix, 0),
		ListMode: mode,
		Success:  true,
	}

	tree = f.fixupRoot(tree, result)
	f.normalize(tree, "$", mode, result)

	result.Tree = tree
	result.FixCount = len(result.Fixes)
	return result, nil
}
