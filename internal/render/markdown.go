package render

import (
	"github.com/charmbracelet/glamour"
)

// Markdown renders markdown for the terminal at the given width. Generated
// plans and chat replies come back as markdown; on renderer failure the
// raw text is returned so output is never lost.
func Markdown(text string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}
