package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weave/internal/layout"
	"weave/model"
)

func TestMarkdownRender(t *testing.T) {
	md := NewMarkdown()
	out := md.Render("# Title\n\nSome **bold** prose.")
	assert.Contains(t, out, "<h1>")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestHighlightKnownLanguage(t *testing.T) {
	h := NewHighlighter("github")
	out := h.Highlight("int main(void) { return 0; }", "c")
	assert.Contains(t, out, "<pre")
	assert.Contains(t, out, "main")
}

// An unrecognized tag must still produce a rendered code block, never an
// error.
func TestHighlightUnknownTagFallsBack(t *testing.T) {
	h := NewHighlighter("github")
	out := h.Highlight("some opaque text < with markup", "no-such-language")
	require.NotEmpty(t, out)
	assert.Contains(t, out, "opaque")
	assert.NotContains(t, out, "< with", "raw angle bracket must be escaped or wrapped")
}

func TestDestination(t *testing.T) {
	assert.Equal(t, "hello-world.html", Destination("src/hello-world.c"))
	assert.Equal(t, "main.html", Destination("main.go"))
}

func TestPageRendersBothLayouts(t *testing.T) {
	r, err := New("github")
	require.NoError(t, err)

	pf := model.ProcessedFile{
		FileName: "hello.c",
		Blocks: []model.Block{
			{Kind: model.KindComment, Content: "say *hello*", LineStart: 1, LineEnd: 1, SourceFile: "hello.c"},
			{Kind: model.KindCode, Content: `printf("hello");`, Language: "c", LineStart: 2, LineEnd: 2, SourceFile: "hello.c"},
		},
	}
	html, err := r.Page(pf, []string{"hello.c"}, "")
	require.NoError(t, err)

	assert.Contains(t, html, "<title>hello.c</title>")
	assert.Contains(t, html, `id="sidebyside"`)
	assert.Contains(t, html, `id="stacked"`)
	// Both layouts carry the same rendered content.
	assert.Equal(t, 2, strings.Count(html, "<em>hello</em>"))
	assert.NotContains(t, html, "Jump to", "single-file runs have no cross-link menu")
}

func TestSectionsRenderGroupsOnce(t *testing.T) {
	r, err := New("github")
	require.NoError(t, err)

	comment := model.Block{Kind: model.KindComment, Content: "alone"}
	code := model.Block{Kind: model.KindCode, Content: "x = 1", Language: "python"}
	groups := []layout.PairGroup{{Comment: &comment}, {Code: &code}}

	sections := r.Sections(groups)
	require.Len(t, sections, 2)
	assert.NotEmpty(t, sections[0].DocsHTML)
	assert.Empty(t, sections[0].CodeHTML)
	assert.Empty(t, sections[1].DocsHTML)
	assert.NotEmpty(t, sections[1].CodeHTML)
}
