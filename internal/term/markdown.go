package term

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// Markdown renders md for the terminal, wrapped at Options.Width. Without
// color the "notty" style is used, which keeps the text plain.
func (r *Renderer) Markdown(md string) (string, error) {
	style := glamour.WithStandardStyle(styles.NoTTYStyle)
	if r.opts.Color {
		style = glamour.WithAutoStyle()
	}
	tr, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(r.opts.Width))
	if err != nil {
		return "", err
	}
	return tr.Render(md)
}
