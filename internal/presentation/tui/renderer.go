package tui

import (
	"github.com/charmbracelet/glamour"
)

// DefaultWordWrap is the column bot messages are wrapped at.
const DefaultWordWrap = 80

// NewRenderer returns a function that renders bot messages as markdown using glamour.
// An empty style detects light/dark background automatically.
func NewRenderer(style string, width int) (func(string) (string, error), error) {
	if width <= 0 {
		width = DefaultWordWrap
	}
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}
