// Package render turns paired blocks into HTML: markdown for prose, chroma
// for code, and an embedded page template for the final document. Rendering
// degrades rather than fails; a run is never aborted from here.
package render

import (
	"bytes"
	stdhtml "html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"weave/internal/ui"
)

// Markdown renders comment prose to HTML fragments.
type Markdown struct {
	md goldmark.Markdown
}

func NewMarkdown() *Markdown {
	return &Markdown{md: goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(ghtml.WithUnsafe()),
	)}
}

// Render converts prose to an HTML fragment. Conversion failure is absorbed
// here: the prose is escaped, newlines become line breaks, and the result is
// wrapped in a paragraph.
func (m *Markdown) Render(prose string) string {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(prose), &buf); err != nil {
		ui.Warning("markdown rendering failed, falling back to plain text: %v", err)
		escaped := stdhtml.EscapeString(prose)
		return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>\n") + "</p>\n"
	}
	return buf.String()
}
