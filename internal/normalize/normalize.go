// Package normalize strips comment delimiter syntax from raw comment text,
// yielding clean prose. Recognition works on the shape of the text itself,
// not on a language identifier, so the same function serves every grammar.
package normalize

import "strings"

// Normalize removes the comment delimiters from raw and returns the interior
// prose. Unrecognized input is returned trimmed but otherwise unchanged, so
// normalizing already-normalized prose is a no-op.
func Normalize(raw string) string {
	text := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(text, "/*"):
		return normalizeBlock(text)
	case strings.HasPrefix(text, "<!--"):
		return normalizeMarkup(text)
	case strings.HasPrefix(text, "//"):
		return normalizeLines(text, "//", "/")
	case strings.HasPrefix(text, "#"):
		return normalizeLines(text, "#", "")
	case strings.HasPrefix(text, "--"):
		return normalizeLines(text, "--", "-")
	default:
		return text
	}
}

// normalizeBlock handles /* ... */ and doc-style /** ... */ comments,
// including the per-line " * " gutter.
func normalizeBlock(text string) string {
	body := strings.TrimSuffix(text, "*/")
	body = strings.TrimPrefix(body, "/*")
	// Doc comments open with an extra asterisk.
	body = strings.TrimPrefix(body, "*")

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		t := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(t, "*") {
			t = strings.TrimPrefix(t, "*")
			t = strings.TrimPrefix(t, " ")
		}
		lines[i] = strings.TrimRight(t, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// normalizeMarkup handles a single <!-- ... --> pair; there is no per-line
// marker to strip.
func normalizeMarkup(text string) string {
	body := strings.TrimPrefix(text, "<!--")
	body = strings.TrimSuffix(body, "-->")
	return strings.TrimSpace(body)
}

// normalizeLines handles per-line markers (//, #, --). Every non-blank line
// must carry the marker; otherwise the text is not a comment of this family
// and passes through unchanged. doc is an optional extra marker character
// used by doc-comment variants (///, ---).
func normalizeLines(text, marker, doc string) string {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t != "" && !strings.HasPrefix(t, marker) {
			return text
		}
	}
	for i, line := range lines {
		t := strings.TrimLeft(line, " \t")
		t = strings.TrimPrefix(t, marker)
		if doc != "" {
			t = strings.TrimPrefix(t, doc)
		}
		t = strings.TrimPrefix(t, " ")
		lines[i] = strings.TrimRight(t, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
