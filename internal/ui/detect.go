package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether styled output should be written to w.
//
// Color is disabled when:
//   - NO_COLOR or MDCONV_NO_COLOR is set
//   - CI is set
//   - w is not a terminal
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("MDCONV_NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
