package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the lookup form and blocks until the user quits or ctx is done
func Run(ctx context.Context, opts Options) error {
	m := NewModel(ctx, opts)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()

	// Stop timers and pending requests however the program ended
	if fm, ok := finalModel.(Model); ok {
		fm.shutdown()
	} else {
		m.shutdown()
	}

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
