package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weave/internal/fs"
	"weave/internal/language"
	"weave/model"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestProcessSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "hello.c", "/** greet the user */\nprintf(\"hi\");\n")

	p := New(fs.NewPathResolver([]string{dir}))
	processed, err := p.Process(context.Background(), []string{"hello.c"}, "")
	require.NoError(t, err)
	require.Len(t, processed, 1)

	pf := processed[0]
	assert.Equal(t, "hello.c", pf.FileName)
	require.Len(t, pf.Blocks, 2)
	assert.Equal(t, model.KindComment, pf.Blocks[0].Kind)
	assert.Equal(t, "greet the user", pf.Blocks[0].Content)
	assert.Equal(t, model.KindCode, pf.Blocks[1].Kind)
	assert.Equal(t, `printf("hi");`, pf.Blocks[1].Content)
	assert.Equal(t, "c", pf.Blocks[1].Language)
}

func TestProcessPreservesInputOrder(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "b.c", "int b;\n")
	writeFixture(t, dir, "a.c", "int a;\n")

	p := New(fs.NewPathResolver([]string{dir}))
	processed, err := p.Process(context.Background(), []string{"b.c", "a.c"}, "")
	require.NoError(t, err)
	require.Len(t, processed, 2)
	assert.Equal(t, "b.c", processed[0].FileName)
	assert.Equal(t, "a.c", processed[1].FileName)
}

func TestProcessUnsupportedExtensionAborts(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "good.c", "int x;\n")
	writeFixture(t, dir, "bad.xyz", "whatever\n")

	p := New(fs.NewPathResolver([]string{dir}))
	processed, err := p.Process(context.Background(), []string{"good.c", "bad.xyz"}, "")
	require.ErrorIs(t, err, language.ErrUnsupported)
	assert.Nil(t, processed, "a failed run must produce no partial output")
}

func TestProcessMissingFileAborts(t *testing.T) {
	dir := t.TempDir()
	p := New(fs.NewPathResolver([]string{dir}))
	_, err := p.Process(context.Background(), []string{"nope.c"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.c")
}

// Code followed by a same-line comment must survive in a code block; the
// comment rides along as code rather than being carved out.
func TestProcessKeepsCodeBeforeTrailingComment(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "trailing.c", "int x = 42; /* trailing */\nreturn x;\n")

	p := New(fs.NewPathResolver([]string{dir}))
	processed, err := p.Process(context.Background(), []string{"trailing.c"}, "")
	require.NoError(t, err)
	require.Len(t, processed, 1)

	var code string
	for _, b := range processed[0].Blocks {
		if b.Kind == model.KindCode {
			code += b.Content + "\n"
		}
	}
	assert.Contains(t, code, "int x = 42;")
	assert.Contains(t, code, "return x;")
}

func TestProcessFallbackLocator(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "api.proto", "/* the service definition */\nservice Greeter {}\n")

	p := New(fs.NewPathResolver([]string{dir}))
	processed, err := p.Process(context.Background(), []string{"api.proto"}, "")
	require.NoError(t, err)
	require.Len(t, processed, 1)
	require.Len(t, processed[0].Blocks, 2)
	assert.Equal(t, "the service definition", processed[0].Blocks[0].Content)
}
