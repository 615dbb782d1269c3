package render

import (
	"bytes"
	"errors"
	stdhtml "html"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"weave/internal/ui"
)

// Highlighter renders code to HTML via chroma. Failures degrade first to the
// plain-text lexer and finally to manual escaping inside a preformatted
// block; code always renders in some form.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter builds a highlighter for the named chroma style. Unknown
// style names fall back to chroma's default style.
func NewHighlighter(styleName string) *Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{
		style:     style,
		formatter: chromahtml.New(chromahtml.TabWidth(4)),
	}
}

func (h *Highlighter) Highlight(code, tag string) string {
	if out, err := h.format(lexers.Get(tag), code); err == nil {
		return out
	}
	ui.Warning("no highlighter for %q, rendering as plain text", tag)
	if out, err := h.format(lexers.Fallback, code); err == nil {
		return out
	}
	return "<pre><code>" + stdhtml.EscapeString(code) + "</code></pre>\n"
}

func (h *Highlighter) format(lexer chroma.Lexer, code string) (string, error) {
	if lexer == nil {
		return "", errors.New("no lexer")
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, it); err != nil {
		return "", err
	}
	return buf.String(), nil
}
