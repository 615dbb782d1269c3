// Package locator finds comment regions in source text. Two strategies
// satisfy the same contract: a grammar-based locator that walks a tree-sitter
// parse tree, and a regex fallback for extensions with a known textual
// comment convention but no registered grammar.
package locator

import (
	"context"
	"fmt"

	"weave/internal/language"
	"weave/model"
)

// Locator produces the ordered comment spans of a source file.
type Locator interface {
	Locate(ctx context.Context, source string) ([]model.CommentSpan, error)
}

// For selects the locator for lang.
func For(lang language.Language) (Locator, error) {
	switch {
	case lang.Grammar != nil:
		return &GrammarLocator{grammar: lang.Grammar}, nil
	case lang.Fallback:
		return &RegexLocator{}, nil
	default:
		return nil, fmt.Errorf("%w: no locator for %s", language.ErrUnsupported, lang.Name)
	}
}
