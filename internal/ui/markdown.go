package ui

import (
	"github.com/charmbracelet/glamour"
)

// DefaultWrap is the preview word wrap width.
const DefaultWrap = 100

// RenderMarkdown renders md for the terminal.
func RenderMarkdown(md string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
