package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the browser full-screen until the user quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run table browser: %w", err)
	}
	return nil
}
