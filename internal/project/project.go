// Package project applies the locate/normalize/assemble pipeline across an
// ordered set of input files.
package project

import (
	"context"
	"fmt"
	"os"

	"weave/internal/block"
	"weave/internal/fs"
	"weave/internal/language"
	"weave/internal/locator"
	"weave/model"
)

// Processor turns input file names into processed files ready for rendering.
type Processor struct {
	resolver *fs.PathResolver
}

func New(resolver *fs.PathResolver) *Processor {
	return &Processor{resolver: resolver}
}

// Process handles files strictly in the order given; output order is input
// order. Any failure (unsupported extension, unreadable file, parser
// failure) aborts the whole run: a page that silently omitted comments would
// be worse than no page at all.
func (p *Processor) Process(ctx context.Context, files []string, baseURL string) ([]model.ProcessedFile, error) {
	processed := make([]model.ProcessedFile, 0, len(files))
	for _, name := range files {
		pf, err := p.processFile(ctx, name, baseURL)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		processed = append(processed, pf)
	}
	return processed, nil
}

func (p *Processor) processFile(ctx context.Context, name, baseURL string) (model.ProcessedFile, error) {
	lang, err := language.Lookup(name)
	if err != nil {
		return model.ProcessedFile{}, err
	}
	loc, err := locator.For(lang)
	if err != nil {
		return model.ProcessedFile{}, err
	}

	path := p.resolver.ResolveExisting(name)
	if path == "" {
		return model.ProcessedFile{}, fmt.Errorf("file not found")
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return model.ProcessedFile{}, fmt.Errorf("failed to read file: %w", err)
	}

	spans, err := loc.Locate(ctx, string(source))
	if err != nil {
		return model.ProcessedFile{}, err
	}

	return model.ProcessedFile{
		FileName: name,
		Blocks:   block.Assemble(spans, string(source), name, lang.Chroma),
		BaseURL:  baseURL,
	}, nil
}
