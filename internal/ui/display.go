package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// DefaultTermWidth is used when the width cannot be detected.
const DefaultTermWidth = 100

// minContentWidth keeps wrapping sane on very narrow terminals.
const minContentWidth = 40

// Terminal describes an output stream.
type Terminal struct {
	Width int
	TTY   bool
}

// DetectTerminal inspects f. Non-terminals report DefaultTermWidth.
func DetectTerminal(f *os.File) Terminal {
	t := Terminal{Width: DefaultTermWidth, TTY: IsTerminal(f)}
	if !t.TTY {
		return t
	}
	if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 {
		t.Width = w
	}
	return t
}

// ContentWidth is the width left after a left margin, never below
// minContentWidth.
func (t Terminal) ContentWidth(margin int) int {
	if w := t.Width - margin; w > minContentWidth {
		return w
	}
	return minContentWidth
}

// IsTerminal reports whether f is attached to a terminal, including
// Cygwin/MSYS ptys.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
