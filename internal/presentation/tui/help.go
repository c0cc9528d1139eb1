package tui

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

//go:embed help.md
var helpMarkdown string

// renderHelp renders the embedded key-binding reference through glamour.
// On any renderer failure the raw markdown is still perfectly readable.
func renderHelp() string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(fallbackWidth),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
