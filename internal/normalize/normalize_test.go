package normalize

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "doc_block_with_gutter",
			in:   "/**\n * The main function is executed when our program starts.\n * It returns an int\n */",
			want: "The main function is executed when our program starts.\nIt returns an int",
		},
		{
			name: "doc_block_two_space_gutter",
			in:   "/**\n  * `hello-world.c` - a brief hello world in C.\n  * This is a literate program\n  */",
			want: "`hello-world.c` - a brief hello world in C.\nThis is a literate program",
		},
		{
			name: "inline_doc_block",
			in:   "/** Print hello world to the user */",
			want: "Print hello world to the user",
		},
		{
			name: "plain_block_without_gutter",
			in:   "/* Another block comment\n   spanning multiple lines\n   without leading asterisks */",
			want: "Another block comment\nspanning multiple lines\nwithout leading asterisks",
		},
		{
			name: "line_comments",
			in:   "// first line\n// second line",
			want: "first line\nsecond line",
		},
		{
			name: "doc_line_comments",
			in:   "/// exported thing\n/// does stuff",
			want: "exported thing\ndoes stuff",
		},
		{
			name: "shell_comments",
			in:   "# configure the build\n# then run it",
			want: "configure the build\nthen run it",
		},
		{
			name: "markup_comment",
			in:   "<!-- a note about the layout -->",
			want: "a note about the layout",
		},
		{
			name: "double_dash_comments",
			in:   "-- fetch all rows\n-- in insertion order",
			want: "fetch all rows\nin insertion order",
		},
		{
			name: "markdown_inside_gutter",
			in:   "/**\n * # Heading\n * - item one\n * - item two\n */",
			want: "# Heading\n- item one\n- item two",
		},
		{
			name: "passthrough_prose",
			in:   "plain text that is not a comment",
			want: "plain text that is not a comment",
		},
		{
			name: "whitespace_only",
			in:   "/*   \n *\n */",
			want: "",
		},
		{
			name: "mixed_lines_pass_through",
			// A # on the first line only is prose, not a shell comment.
			in:   "# Heading\n\nbody text below the heading",
			want: "# Heading\n\nbody text below the heading",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"/** doc comment */",
		"/* block\n * with gutter\n */",
		"// line one\n// line two",
		"# shell one\n# shell two",
		"<!-- markup -->",
		"-- dash one\n-- dash two",
		"already plain prose\nwith two lines",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
