// Package terminal probes the capabilities of console streams and
// selects the platform writer for colorized output.
package terminal

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// fder is implemented by writers backed by a file descriptor, such as
// *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to an interactive terminal.
// Writers without a file descriptor are never terminals. Cygwin and
// MSYS2 pseudo terminals count as terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorWriter returns a writer rendering ANSI escape sequences on f. On
// Windows consoles the sequences are translated into console attribute
// calls; everywhere else f passes through unchanged.
func ColorWriter(f *os.File) io.Writer {
	return colorable.NewColorable(f)
}
