package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects between the interactive program and plain text.
type OutputMode int

const (
	// OutputModePlain writes a single snapshot as text.
	OutputModePlain OutputMode = iota
	// OutputModeInteractive runs the bubbletea program.
	OutputModeInteractive
)

// DetectOutputMode returns OutputModeInteractive only when both stdin and
// out are terminals and plain was not forced.
func DetectOutputMode(forcePlain bool, in, out *os.File) OutputMode {
	if forcePlain || in == nil || out == nil {
		return OutputModePlain
	}
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return OutputModePlain
	}
	return OutputModeInteractive
}
