package locator

import (
	"context"
	"regexp"
	"strings"

	"weave/internal/normalize"
	"weave/model"
)

// blockCommentRe matches one slash-star comment, shortest first.
var blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

// RegexLocator approximates comment location with a block-comment pattern.
// It is the fallback for extensions whose comment convention is known but
// whose grammar is not compiled in.
type RegexLocator struct{}

// Locate scans source for block comments. Line numbers are computed by
// counting newlines before each match. Spans whose content is empty after
// delimiter stripping are discarded here; they would otherwise surface as
// vacuous blocks downstream. Comments trailing code on the same line stay
// with that code, matching the grammar locator.
func (RegexLocator) Locate(_ context.Context, source string) ([]model.CommentSpan, error) {
	var spans []model.CommentSpan
	for _, loc := range blockCommentRe.FindAllStringIndex(source, -1) {
		raw := source[loc[0]:loc[1]]
		if normalize.Normalize(raw) == "" {
			continue
		}
		if !startsLine([]byte(source), uint32(loc[0])) {
			continue
		}
		start := strings.Count(source[:loc[0]], "\n") + 1
		spans = append(spans, model.CommentSpan{
			LineStart: start,
			LineEnd:   start + strings.Count(raw, "\n"),
			RawText:   raw,
		})
	}
	return spans, nil
}
