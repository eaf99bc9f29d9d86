// Package poderrors provides structured error types for podtools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - UnrecognizedNodeKindError: a source node variant with no conversion rule
//   - DecodeError: malformed serialized parse dumps (JSON/YAML)
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	result, err := converter.ConvertWithOptions(converter.WithFilePath("doc.pod.json"))
//	if err != nil {
//	    var kindErr *poderrors.UnrecognizedNodeKindError
//	    if errors.As(err, &kindErr) {
//	        // The source tree contains a variant the converter has no rule for
//	    }
//	}
package poderrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrUnrecognizedNodeKind indicates a source node variant had no conversion rule.
	ErrUnrecognizedNodeKind = errors.New("unrecognized node kind")

	// ErrDecode indicates a serialized parse dump could not be decoded.
	ErrDecode = errors.New("decode error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// UnrecognizedNodeKindError represents a source node whose variant the
// conversion dispatcher has no mapping rule for. There is no safe default
// conversion, so this error is never recovered internally and propagates
// unchanged to the caller of the build pipeline.
type UnrecognizedNodeKindError struct {
	// Kind is the Go type or discriminator of the unmatched input (e.g. "*pod.Config")
	Kind string
	// Description is a human-readable rendering of the unmatched input
	Description string
}

// Error returns a human-readable error message.
func (e *UnrecognizedNodeKindError) Error() string {
	msg := "unrecognized node kind"
	if e.Kind != "" {
		msg += ": " + e.Kind
	}
	if e.Description != "" {
		msg += ": " + e.Description
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnrecognizedNodeKindError) Is(target error) bool {
	return target == ErrUnrecognizedNodeKind
}

// DecodeError represents a failure to decode a serialized parse dump.
// This includes JSON/YAML deserialization errors and structural issues
// (missing discriminators, wrong payload shapes).
type DecodeError struct {
	// Path is the file path or source identifier
	Path string
	// NodePath is the dotted path to the offending node within the dump
	// (e.g. "contents[2].rows[0]"), empty if unknown
	NodePath string
	// Message describes the decode failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DecodeError) Error() string {
	msg := "decode error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.NodePath != "" {
		msg += " at " + e.NodePath
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// ConfigError represents an invalid configuration or option combination,
// such as specifying no input source, multiple input sources, a nil tree,
// or an unknown list mode.
type ConfigError struct {
	// Option is the name of the offending option, if known
	Option string
	// Message describes the configuration problem
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " (" + e.Option + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewUnrecognizedNodeKind builds an UnrecognizedNodeKindError describing v.
func NewUnrecognizedNodeKind(v any) *UnrecognizedNodeKindError {
	return &UnrecognizedNodeKindError{
		Kind:        fmt.Sprintf("%T", v),
		Description: fmt.Sprintf("%+v", v),
	}
}
