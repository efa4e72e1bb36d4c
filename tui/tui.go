package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI application. initialPaths are selected before the
// first frame, as if picked by the user.
func Run(m Model, initialPaths []string) error {
	m = m.selectPaths(initialPaths)

	// Create the program with alt screen and mouse support to fully isolate TUI
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Release every preview handle still held, whatever way the program ended
	defer m.ctrl.Close()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
