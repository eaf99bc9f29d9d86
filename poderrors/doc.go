// Package poderrors provides structured error types for the podtools library.
//
// Import path: github.com/erraggy/podtools/poderrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides three core error types:
//
//   - [UnrecognizedNodeKindError]: a source node variant with no conversion rule
//   - [DecodeError]: serialized parse dumps that fail to decode (JSON/YAML)
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrUnrecognizedNodeKind]: Matches any [UnrecognizedNodeKindError]
//   - [ErrDecode]: Matches any [DecodeError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := converter.ConvertWithOptions(converter.WithFilePath("doc.pod.json"))
//	if errors.Is(err, poderrors.ErrDecode) {
//	    // Handle a malformed parse dump
//	}
//
// Extract error details with errors.As():
//
//	var kindErr *poderrors.UnrecognizedNodeKindError
//	if errors.As(err, &kindErr) {
//	    fmt.Printf("no conversion rule for %s\n", kindErr.Kind)
//	}
//
// # Error Chaining
//
// DecodeError supports error chaining via the Cause field and Unwrap() method.
// This allows finding root causes through the standard error chain:
//
//	var decErr *poderrors.DecodeError
//	if errors.As(err, &decErr) {
//	    if errors.Is(decErr.Cause, os.ErrNotExist) {
//	        // The dump file doesn't exist
//	    }
//	}
package poderrors
