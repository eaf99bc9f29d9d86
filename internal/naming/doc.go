// Package naming provides shared section-name utilities for podtools packages.
//
// This internal package recognizes the conventional all-caps section names
// (NAME, SYNOPSIS, DESCRIPTION, ...) and converts them to display form for
// outlines and CLI output.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
