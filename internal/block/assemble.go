// Package block partitions source text into the ordered sequence of comment
// and code blocks that reconstructs the file.
package block

import (
	"strings"

	"weave/internal/normalize"
	"weave/model"
)

// Assemble walks spans in ascending start order, emitting a Code block for
// each gap between comments and a Comment block for each span. A cursor
// tracks the last fully consumed line; after the last span the remainder of
// the file becomes one trailing Code block. Gaps containing only blank lines
// emit nothing.
//
// Spans must already be sorted by LineStart; the locator contract guarantees
// this. langTag is the highlighter tag applied to every code block of the
// file.
func Assemble(spans []model.CommentSpan, source, fileName, langTag string) []model.Block {
	lines := splitLines(source)

	var blocks []model.Block
	cursor := 0
	for _, span := range spans {
		if span.LineStart > cursor+1 {
			if b, ok := codeBlock(lines, cursor+1, span.LineStart-1, fileName, langTag); ok {
				blocks = append(blocks, b)
			}
		}
		blocks = append(blocks, model.Block{
			Kind:       model.KindComment,
			Content:    normalize.Normalize(span.RawText),
			LineStart:  span.LineStart,
			LineEnd:    span.LineEnd,
			SourceFile: fileName,
		})
		if span.LineEnd > cursor {
			cursor = span.LineEnd
		}
	}
	if cursor < len(lines) {
		if b, ok := codeBlock(lines, cursor+1, len(lines), fileName, langTag); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// splitLines returns the logical lines of source. A trailing newline does
// not introduce a final empty line.
func splitLines(source string) []string {
	if source == "" {
		return nil
	}
	lines := strings.Split(source, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// codeBlock builds a Code block for lines start..end (1-indexed, inclusive),
// shrinking the range past blank edge lines. ok is false when the gap holds
// nothing but blanks.
func codeBlock(lines []string, start, end int, fileName, langTag string) (model.Block, bool) {
	for start <= end && strings.TrimSpace(lines[start-1]) == "" {
		start++
	}
	for end >= start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if start > end {
		return model.Block{}, false
	}
	return model.Block{
		Kind:       model.KindCode,
		Content:    strings.Join(lines[start-1:end], "\n"),
		Language:   langTag,
		LineStart:  start,
		LineEnd:    end,
		SourceFile: fileName,
	}, true
}
