package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/popup-listbox/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	MultiSelect bool
	ItemsFile   string
	Focus       string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	panes, err := Build(cfg)
	if err != nil {
		return fmt.Errorf("build listboxes: %w", err)
	}
	model := ui.NewModel(panes, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
