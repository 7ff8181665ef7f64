package display

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	// DefaultWidth is used when the output is not a terminal or its size
	// cannot be read.
	DefaultWidth = 79
	// MinWidth is the narrowest layout the table mode will use.
	MinWidth = 50
)

// WidthProvider reports the number of columns available for a line of
// output.
type WidthProvider interface {
	Width() int
}

// FixedWidth is a WidthProvider that always reports the same width.
type FixedWidth int

// Width implements WidthProvider.
func (w FixedWidth) Width() int {
	return int(w)
}

// TerminalWidth reads the window width of File. One column is given up so
// that a full line never triggers the terminal's automatic wrap, and the
// result is never below MinWidth. When File is not a terminal Fallback is
// returned, or DefaultWidth if Fallback is not set.
type TerminalWidth struct {
	File     *os.File
	Fallback int
}

// Width implements WidthProvider.
func (t TerminalWidth) Width() int {
	fallback := t.Fallback
	if fallback <= 0 {
		fallback = DefaultWidth
	}

	if t.File == nil {
		return fallback
	}
	fd := t.File.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fallback
	}

	cols, _, err := term.GetSize(int(fd))
	if err != nil || cols <= 0 {
		return fallback
	}

	cols--
	if cols < MinWidth {
		cols = MinWidth
	}
	return cols
}
