package locator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"weave/model"
)

// ErrParserInit is returned when the tree-sitter parser fails to produce a
// tree. This is fatal for the file: continuing would silently drop comments
// and break the reconstruction guarantee.
var ErrParserInit = errors.New("parser initialization failed")

// commentKinds covers the node type names grammars use for comments. Some
// grammars expose a single "comment" kind, others split line and block
// comments.
var commentKinds = map[string]bool{
	"comment":       true,
	"line_comment":  true,
	"block_comment": true,
}

// GrammarLocator locates comments by walking a tree-sitter parse tree.
type GrammarLocator struct {
	grammar *sitter.Language
}

// Locate parses source and collects every comment node. Tree traversal order
// is not guaranteed to be source order for all grammars, so spans are sorted
// by start line before being returned.
func (g *GrammarLocator) Locate(ctx context.Context, source string) ([]model.CommentSpan, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(g.grammar)

	src := []byte(source)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParserInit, err)
	}
	if tree == nil {
		return nil, ErrParserInit
	}
	defer tree.Close()

	var spans []model.CommentSpan
	collect(tree.RootNode(), src, &spans)

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].LineStart < spans[j].LineStart
	})
	return spans, nil
}

func collect(n *sitter.Node, src []byte, out *[]model.CommentSpan) {
	if n == nil {
		return
	}
	if commentKinds[n.Type()] {
		raw := n.Content(src)
		// Shebang lines parse as comments in shell grammars but are
		// execution directives; they must survive as code.
		if strings.HasPrefix(raw, "#!") && n.StartPoint().Row == 0 {
			return
		}
		// A comment trailing code on the same line stays with that
		// code: carving it out would drop the code from every block.
		if !startsLine(src, n.StartByte()) {
			return
		}
		*out = append(*out, model.CommentSpan{
			LineStart: int(n.StartPoint().Row) + 1,
			LineEnd:   int(n.EndPoint().Row) + 1,
			RawText:   raw,
		})
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		collect(n.Child(i), src, out)
	}
}

// startsLine reports whether only whitespace precedes offset on its line.
func startsLine(src []byte, offset uint32) bool {
	for i := int(offset) - 1; i >= 0 && src[i] != '\n'; i-- {
		if src[i] != ' ' && src[i] != '\t' {
			return false
		}
	}
	return true
}
