package controller

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rupert648/ratunit/internal/domain/navigation"
)

// TUI implements UI using Bubble Tea for interactive display. Summaries and
// load failures are printed the same way SimpleUI prints them.
type TUI struct {
	*SimpleUI
	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), cmd: cmd}
}

// Browse runs the interactive browser until the user quits.
func (t *TUI) Browse(ctx context.Context, set *navigation.ReportSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	output := t.cmd.OutOrStdout()
	model := newBrowserModel(set)

	// Get initial terminal size
	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(output),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}

	return nil
}
