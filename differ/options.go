package differ

import (
	"fmt"

	"github.com/erraggy/podtools/converter"
	"github.com/erraggy/podtools/dom"
	"github.com/erraggy/podtools/fixer"
)

// Option is a function that configures a diff operation.
type Option func(*diffConfig) error

// diffConfig holds configuration for a diff operation.
type diffConfig struct {
	// Input sources (exactly one source and one target must be set)
	sourceTree     *dom.Node
	sourceFilePath *string
	targetTree     *dom.Node
	targetFilePath *string

	listMode fixer.ListMode
}

// DiffWithOptions compares two documents using functional options. File
// inputs run through the full conversion pipeline before comparison, so the
// diff always sees normalized trees.
//
// Example:
//
//	result, err := differ.DiffWithOptions(
//	    differ.WithSourceFilePath("doc-v1.json"),
//	    differ.WithTargetFilePath("doc-v2.json"),
//	)
func DiffWithOptions(opts ...Option) (*DiffResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("differ: invalid options: %w", err)
	}

	source, err := cfg.resolveTree(cfg.sourceTree, cfg.sourceFilePath, "source")
	if err != nil {
		return nil, err
	}
	target, err := cfg.resolveTree(cfg.targetTree, cfg.targetFilePath, "target")
	if err != nil {
		return nil, err
	}

	return New().Diff(source, target)
}

// resolveTree returns the tree directly or converts the file input.
func (cfg *diffConfig) resolveTree(tree *dom.Node, filePath *string, role string) (*dom.Node, error) {
	if tree != nil {
		return tree, nil
	}
	convOpts := []converter.Option{converter.WithFilePath(*filePath)}
	if cfg.listMode != "" {
		convOpts = append(convOpts, converter.WithListMode(cfg.listMode))
	}
	result, err := converter.ConvertWithOptions(convOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", role, err)
	}
	return result.Tree, nil
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*diffConfig, error) {
	cfg := &diffConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sourceCount := 0
	if cfg.sourceTree != nil {
		sourceCount++
	}
	if cfg.sourceFilePath != nil {
		sourceCount++
	}
	if sourceCount == 0 {
		return nil, fmt.Errorf("must specify a source (use WithSourceTree or WithSourceFilePath)")
	}
	if sourceCount > 1 {
		return nil, fmt.Errorf("must specify exactly one source")
	}

	targetCount := 0
	if cfg.targetTree != nil {
		targetCount++
	}
	if cfg.targetFilePath != nil {
		targetCount++
	}
	if targetCount == 0 {
		return nil, fmt.Errorf("must specify a target (use WithTargetTree or WithTargetFilePath)")
	}
	if targetCount > 1 {
		return nil, fmt.Errorf("must specify exactly one target")
	}

	return cfg, nil
}

// WithSourceTree specifies an already-converted tree as the source document.
func WithSourceTree(tree *dom.Node) Option {
	return func(cfg *diffConfig) error {
		cfg.sourceTree = tree
		return nil
	}
}

// WithSourceFilePath specifies a parse dump file as the source document.
func WithSourceFilePath(path string) Option {
	return func(cfg *diffConfig) error {
		cfg.sourceFilePath = &path
		return nil
	}
}

// WithTargetTree specifies an already-converted tree as the target document.
func WithTargetTree(tree *dom.Node) Option {
	return func(cfg *diffConfig) error {
		cfg.targetTree = tree
		return nil
	}
}

// WithTargetFilePath specifies a parse dump file as the target document.
func WithTargetFilePath(path string) Option {
	return func(cfg *diffConfig) error {
		cfg.targetFilePath = &path
		return nil
	}
}

// WithListMode sets the list normalization mode used when converting file
// inputs. Has no effect on tree inputs.
func WithListMode(mode fixer.ListMode) Option {
	return func(cfg *diffConfig) error {
		if !mode.IsValid() {
			return fmt.Errorf("invalid list mode %q", mode)
		}
		cfg.listMode = mode
		return nil
	}
}
