package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"weave/internal/language"
)

// Config holds all the command-line flag values.
type Config struct {
	OutDir      string
	Style       string
	BaseURL     string
	Title       string
	NoAnimation bool
	Stdout      bool
	LookupDirs  []string
	Extensions  []string
	Files       []string
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// Define flags
	pflag.StringVarP(&cfg.OutDir, "outdir", "o", "docs", "Output directory for generated HTML and CSS.")
	pflag.StringVar(&cfg.Style, "style", "github", "Syntax highlighting style.")
	pflag.StringVar(&cfg.BaseURL, "base-url", "", "Base URL for linking back to source files.")
	pflag.StringVar(&cfg.Title, "title", "", "Page title override (default: the source file name).")
	pflag.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable the progress spinner; print a plain summary.")
	pflag.BoolVar(&cfg.Stdout, "stdout", false, "Print generated HTML to stdout instead of writing files.")
	pflag.StringSliceVarP(&cfg.LookupDirs, "lookup-dir", "l", []string{}, "Directories to resolve input files against (default: current directory).")
	pflag.StringSliceVarP(&cfg.Extensions, "extension", "e", []string{}, "Only process inputs with these extensions (e.g. 'c', 'go').")

	pflag.Usage = func() {
		fmt.Println("Usage: weave [flags] <file>...")
		fmt.Println("\nGenerate literate-programming HTML from annotated source files.")
		fmt.Println("\nFile names may also be piped on stdin, one per line.")
		fmt.Println("\nExample: weave -o docs src/hello-world.c")
		exts := language.Extensions()
		sort.Strings(exts)
		fmt.Println("\nSupported extensions:", strings.Join(exts, " "))
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()
	cfg.Files = pflag.Args()

	// Validate mutually exclusive flags
	if cfg.Stdout && cfg.OutDir != "docs" {
		return nil, fmt.Errorf("error: --stdout and --outdir are mutually exclusive")
	}

	// Normalize extensions
	for i, ext := range cfg.Extensions {
		if len(ext) > 0 && ext[0] != '.' {
			cfg.Extensions[i] = "." + ext
		}
	}

	return cfg, nil
}
