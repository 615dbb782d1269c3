package weave

import (
	"fmt"

	"weave/cli"
)

// Config for using weave as a library.
type Config struct {
	// Output directory for generated HTML and CSS.
	OutDir string
	// Syntax highlighting style name.
	Style string
	// Base URL for linking back to source files.
	BaseURL string
	// Only process inputs with these extensions (e.g. ".c", ".go").
	Extensions []string
}

// Generate renders documentation for the given files and returns the paths
// of the generated pages.
func Generate(files []string, config Config) ([]string, error) {
	if config.OutDir == "" {
		config.OutDir = "docs"
	}
	if config.Style == "" {
		config.Style = "github"
	}

	cliCfg := &cli.Config{
		OutDir:     config.OutDir,
		Style:      config.Style,
		BaseURL:    config.BaseURL,
		Extensions: config.Extensions,
		Files:      files,
	}

	app, err := New(cliCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize weave app: %w", err)
	}

	summary, err := app.Execute()
	if err != nil {
		return nil, err
	}
	return summary.Generated, nil
}
