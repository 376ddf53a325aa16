package console

import (
	"io"

	"golang.org/x/term"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// IsTerminal reports whether w writes to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// WrapWidth returns the column at which text written to w should wrap.
//
// Precondition: preferred must be positive.
// Postcondition: Returns preferred, narrowed to the terminal width when w is a
// terminal narrower than preferred.
func WrapWidth(w io.Writer, preferred int) int {
	f, ok := w.(fdWriter)
	if !ok {
		return preferred
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 || cols >= preferred {
		return preferred
	}
	return cols
}
