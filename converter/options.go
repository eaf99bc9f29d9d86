package converter

import (
	"fmt"
	"io"

	"github.com/erraggy/podtools/fixer"
	"github.com/erraggy/podtools/internal/options"
	"github.com/erraggy/podtools/pod"
	"github.com/erraggy/podtools/poderrors"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input source (exactly one must be set)
	source   pod.Node
	filePath *string
	reader   io.Reader

	// Configuration options
	listMode  fixer.ListMode
	normalize bool
	logger    pod.Logger
}

// ConvertWithOptions builds a normalized tree using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithFilePath("perldoc.pod.json"),
//	    converter.WithListMode(fixer.ListModeMerged),
//	)
func ConvertWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	c := &Converter{
		ListMode:  cfg.listMode,
		Normalize: cfg.normalize,
		Logger:    cfg.logger,
	}

	// Route to the appropriate method based on input source
	if cfg.source != nil {
		return c.Convert(cfg.source)
	}
	if cfg.filePath != nil {
		return c.ConvertFile(*cfg.filePath)
	}
	return c.ConvertReader(cfg.reader)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		listMode:  fixer.ListModePerItem,
		normalize: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate that exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"no input source specified: use WithSource, WithFilePath, or WithReader",
		"multiple input sources specified: use only one of WithSource, WithFilePath, or WithReader",
		cfg.source != nil, cfg.filePath != nil, cfg.reader != nil,
	); err != nil {
		return nil, &poderrors.ConfigError{Option: "input", Message: err.Error()}
	}

	return cfg, nil
}

// WithSource specifies an in-memory source tree to convert
func WithSource(src pod.Node) Option {
	return func(cfg *convertConfig) error {
		if src == nil {
			return &poderrors.ConfigError{Option: "WithSource", Message: "source cannot be nil"}
		}
		cfg.source = src
		return nil
	}
}

// WithFilePath specifies the serialized parse dump file to convert
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		if path == "" {
			return &poderrors.ConfigError{Option: "WithFilePath", Message: "file path cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies a reader of serialized parse dump content to convert
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &poderrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithListMode selects per-item or merged list wrapping during normalization
func WithListMode(mode fixer.ListMode) Option {
	return func(cfg *convertConfig) error {
		if !mode.IsValid() {
			return &poderrors.ConfigError{Option: "WithListMode", Message: fmt.Sprintf("unknown list mode: %s", mode)}
		}
		if mode == "" {
			mode = fixer.ListModePerItem
		}
		cfg.listMode = mode
		return nil
	}
}

// WithNormalize controls whether the list-normalization pass runs after
// conversion. It defaults to true.
func WithNormalize(normalize bool) Option {
	return func(cfg *convertConfig) error {
		cfg.normalize = normalize
		return nil
	}
}

// WithLogger sets the logger for diagnostic output
func WithLogger(logger pod.Logger) Option {
	return func(cfg *convertConfig) error {
		cfg.logger = logger
		return nil
	}
}
