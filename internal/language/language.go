package language

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/css"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/lua"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ErrUnsupported is returned when a file's extension has neither a grammar
// nor a fallback comment convention registered.
var ErrUnsupported = errors.New("unsupported file extension")

// Language describes how files of one extension are processed: which grammar
// locates their comments (or whether the regex fallback convention applies)
// and which tag the syntax highlighter should use for their code.
type Language struct {
	Name string
	// Chroma is the syntax-highlighter tag for code blocks.
	Chroma string
	// Grammar is the tree-sitter grammar, nil when only a fallback
	// convention is registered.
	Grammar *sitter.Language
	// Fallback marks extensions with no grammar but a known slash-star
	// block comment convention.
	Fallback bool
}

var table = map[string]Language{
	".go":   {Name: "go", Chroma: "go", Grammar: golang.GetLanguage()},
	".c":    {Name: "c", Chroma: "c", Grammar: c.GetLanguage()},
	".h":    {Name: "c", Chroma: "c", Grammar: c.GetLanguage()},
	".cpp":  {Name: "cpp", Chroma: "cpp", Grammar: cpp.GetLanguage()},
	".cc":   {Name: "cpp", Chroma: "cpp", Grammar: cpp.GetLanguage()},
	".hpp":  {Name: "cpp", Chroma: "cpp", Grammar: cpp.GetLanguage()},
	".js":   {Name: "javascript", Chroma: "javascript", Grammar: javascript.GetLanguage()},
	".mjs":  {Name: "javascript", Chroma: "javascript", Grammar: javascript.GetLanguage()},
	".ts":   {Name: "typescript", Chroma: "typescript", Grammar: typescript.GetLanguage()},
	".py":   {Name: "python", Chroma: "python", Grammar: python.GetLanguage()},
	".rs":   {Name: "rust", Chroma: "rust", Grammar: rust.GetLanguage()},
	".rb":   {Name: "ruby", Chroma: "ruby", Grammar: ruby.GetLanguage()},
	".sh":   {Name: "bash", Chroma: "bash", Grammar: bash.GetLanguage()},
	".bash": {Name: "bash", Chroma: "bash", Grammar: bash.GetLanguage()},
	".css":  {Name: "css", Chroma: "css", Grammar: css.GetLanguage()},
	".html": {Name: "html", Chroma: "html", Grammar: html.GetLanguage()},
	".java": {Name: "java", Chroma: "java", Grammar: java.GetLanguage()},
	".lua":  {Name: "lua", Chroma: "lua", Grammar: lua.GetLanguage()},

	// No grammar compiled in, but the slash-star block convention holds.
	".proto": {Name: "proto", Chroma: "protobuf", Fallback: true},
	".scss":  {Name: "scss", Chroma: "scss", Fallback: true},
	".glsl":  {Name: "glsl", Chroma: "glsl", Fallback: true},
}

// Lookup returns the language registered for path's extension. Unknown
// extensions are a hard error: processing a file as plain text would
// silently drop its comments.
func Lookup(path string) (Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := table[ext]
	if !ok {
		return Language{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	return lang, nil
}

// Extensions returns every registered extension, for usage text.
func Extensions() []string {
	exts := make([]string, 0, len(table))
	for ext := range table {
		exts = append(exts, ext)
	}
	return exts
}
