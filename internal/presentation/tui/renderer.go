package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders report markdown for the
// terminal. When stdout is not a terminal (piped output) the markdown is
// passed through untouched.
func NewRenderer() func(string) (string, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return passthrough
	}

	width := 100
	if w, _, err := term.GetSize(fd); err == nil && w > 0 && w < width {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return passthrough
	}
	return r.Render
}

func passthrough(markdown string) (string, error) {
	return markdown, nil
}
