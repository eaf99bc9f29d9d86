// Package severity provides severity level constants and utilities
// for issues reported by the converter, fixer, and differ packages.
//
// All severity levels are exported by each public package that uses them:
//   - SeverityInfo: Informational messages about choices made
//   - SeverityWarning: Lossy conversions or recommendations
//   - SeverityError: Structural problems that make trees invalid
//   - SeverityCritical: Features that cannot be processed (data loss)
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue found during conversion,
// normalization, or diff analysis.
type Severity int

const (
	// SeverityError indicates a structural problem that makes the tree invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates lossy conversions or recommendations that
	// don't prevent processing but should be addressed.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates features that cannot be processed without data loss.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
