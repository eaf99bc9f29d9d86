// Package cliutil holds output helpers for the podtools CLI.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef formats to w, reporting a failed write on stderr instead of
// returning an error the subcommand handlers would all ignore anyway.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
