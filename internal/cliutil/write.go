// Package cliutil provides output and suggestion helpers for the errloc command.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to w.
// A failed write is reported on stderr rather than returned.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Writeln writes each line to w followed by a newline.
func Writeln(w io.Writer, lines ...string) {
	for _, line := range lines {
		Writef(w, "%s\n", line)
	}
}
