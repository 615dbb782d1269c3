package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"weave"
	"weave/cli"
	"weave/internal/tui"
	"weave/internal/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app, err := weave.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	// Stdout mode and --no-animation print directly; no TUI.
	if cfg.Stdout || cfg.NoAnimation {
		summary, err := app.Execute()
		if err != nil {
			if e, ok := err.(*weave.DetailedError); ok {
				fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", e.Stack)
			}
			ui.Error("Error: %v", err)
			os.Exit(1)
		}
		if summary.Message != "" {
			ui.Info("%s", summary.Message)
		}
		if !cfg.Stdout {
			ui.PrintRunSummary(summary.Generated, summary.Failed)
		}
		return
	}

	model := tui.New(app)
	p := tea.NewProgram(model)
	model.SetProgram(p)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
