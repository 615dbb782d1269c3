package model

// BlockKind distinguishes the two halves of a literate source file.
type BlockKind int

const (
	KindComment BlockKind = iota
	KindCode
)

func (k BlockKind) String() string {
	if k == KindComment {
		return "comment"
	}
	return "code"
}

// CommentSpan is a raw comment region located in source text. Lines are
// 1-indexed and inclusive; RawText still carries the comment delimiters.
type CommentSpan struct {
	LineStart int
	LineEnd   int
	RawText   string
}

// Block is the atomic unit of output: normalized prose for comments, raw
// source text for code. Language is set on code blocks only.
type Block struct {
	Kind       BlockKind
	Content    string
	Language   string
	LineStart  int
	LineEnd    int
	SourceFile string
}

// ProcessedFile holds the ordered block sequence extracted from one input
// file. It is created once during processing and not mutated afterwards.
type ProcessedFile struct {
	FileName string
	Blocks   []Block
	BaseURL  string
}

// Summary holds the results of a run for display.
type Summary struct {
	Generated []string
	Failed    []string
	Message   string
}
