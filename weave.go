package weave

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"weave/cli"
	"weave/internal/fs"
	"weave/internal/project"
	"weave/internal/render"
	"weave/model"
)

// ProgressUpdate is a callback function to report progress.
type ProgressUpdate func(current, total int)

// App orchestrates the entire application logic.
type App struct {
	cfg              *cli.Config
	processor        *project.Processor
	renderer         *render.Renderer
	progressCallback ProgressUpdate
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// New creates a new App instance.
func New(cfg *cli.Config) (*App, error) {
	renderer, err := render.New(cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}
	resolver := fs.NewPathResolver(cfg.LookupDirs)

	return &App{
		cfg:       cfg,
		processor: project.New(resolver),
		renderer:  renderer,
	}, nil
}

// SetProgressCallback sets a function to be called for progress updates.
func (a *App) SetProgressCallback(cb ProgressUpdate) {
	a.progressCallback = cb
}

// Execute runs one generation pass over the configured inputs.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	files := a.inputFiles()
	if len(files) == 0 {
		return model.Summary{Message: "No input files. Nothing to generate."}, nil
	}

	processed, err := a.processor.Process(context.Background(), files, a.cfg.BaseURL)
	if err != nil {
		return model.Summary{}, err
	}

	return a.writeOutput(processed, files)
}

// inputFiles collects the ordered input set: argument order is preserved, a
// piped stdin list is accepted when no arguments were given, and the
// extension filter is applied last.
func (a *App) inputFiles() []string {
	files := a.cfg.Files
	if len(files) == 0 {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
			files = fs.ReadFileList(os.Stdin)
		}
	}
	if len(a.cfg.Extensions) == 0 {
		return files
	}

	var kept []string
	for _, f := range files {
		for _, ext := range a.cfg.Extensions {
			if filepath.Ext(f) == ext {
				kept = append(kept, f)
				break
			}
		}
	}
	return kept
}

// writeOutput renders every processed file and writes the pages plus the
// shared stylesheet, or prints pages to stdout in stdout mode.
func (a *App) writeOutput(processed []model.ProcessedFile, sources []string) (model.Summary, error) {
	total := len(processed)
	if a.progressCallback != nil {
		a.progressCallback(0, total)
	}

	if !a.cfg.Stdout {
		if err := fs.EnsureOutDir(a.cfg.OutDir); err != nil {
			return model.Summary{}, err
		}
		cssPath := filepath.Join(a.cfg.OutDir, "weave.css")
		if err := fs.WriteOutput(cssPath, render.CSS()); err != nil {
			return model.Summary{}, err
		}
	}

	var generated []string
	for i, pf := range processed {
		page, err := a.renderer.Page(pf, sources, a.cfg.Title)
		if err != nil {
			return model.Summary{}, err
		}

		if a.cfg.Stdout {
			fmt.Print(page)
		} else {
			dest := filepath.Join(a.cfg.OutDir, render.Destination(pf.FileName))
			if err := fs.WriteOutput(dest, page); err != nil {
				return model.Summary{}, err
			}
			generated = append(generated, dest)
		}

		if a.progressCallback != nil {
			a.progressCallback(i+1, total)
		}
	}

	return model.Summary{Generated: generated}, nil
}
