package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"weave/internal/layout"
	"weave/model"
)

//go:embed assets/page.html.tmpl
var pageTemplate string

//go:embed assets/weave.css
var styleSheet string

// Section is one rendered pair group. DocsHTML or CodeHTML is empty when
// the group has no block on that side.
type Section struct {
	Index    int
	DocsHTML template.HTML
	CodeHTML template.HTML
}

// Page is the data handed to the page template.
type Page struct {
	Title    string
	Sources  []string
	Multiple bool
	// SourceHref links back to the original file when a base URL is
	// configured; empty otherwise.
	SourceHref string
	Sections   []Section
}

// Renderer bundles the markdown and highlighting collaborators with the page
// template. Configuration is fixed at construction and read-only afterwards.
type Renderer struct {
	markdown    *Markdown
	highlighter *Highlighter
	tmpl        *template.Template
}

func New(styleName string) (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"destination": Destination,
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &Renderer{
		markdown:    NewMarkdown(),
		highlighter: NewHighlighter(styleName),
		tmpl:        tmpl,
	}, nil
}

// Sections renders each pair group exactly once. The stacked and the
// side-by-side views in the template both range over this same slice, so the
// two layouts always depict identical content.
func (r *Renderer) Sections(groups []layout.PairGroup) []Section {
	sections := make([]Section, len(groups))
	for i, g := range groups {
		s := Section{Index: i + 1}
		if g.Comment != nil {
			s.DocsHTML = template.HTML(r.markdown.Render(g.Comment.Content))
		}
		if g.Code != nil {
			s.CodeHTML = template.HTML(r.highlighter.Highlight(g.Code.Content, g.Code.Language))
		}
		sections[i] = s
	}
	return sections
}

// Page renders the complete HTML document for one processed file. sources
// lists every file of the run, for the cross-link menu on multi-file runs.
func (r *Renderer) Page(pf model.ProcessedFile, sources []string, title string) (string, error) {
	groups := layout.Groups(pf.Blocks)
	if title == "" {
		title = filepath.Base(pf.FileName)
	}
	var sourceHref string
	if pf.BaseURL != "" {
		sourceHref = strings.TrimSuffix(pf.BaseURL, "/") + "/" + pf.FileName
	}
	data := Page{
		Title:      title,
		Sources:    sources,
		Multiple:   len(sources) > 1,
		SourceHref: sourceHref,
		Sections:   r.Sections(groups),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render page for %s: %w", pf.FileName, err)
	}
	return buf.String(), nil
}

// Destination maps a source file name to its output page name.
func Destination(sourceName string) string {
	base := filepath.Base(sourceName)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".html"
}

// CSS returns the embedded stylesheet written once per output directory.
func CSS() string {
	return styleSheet
}
