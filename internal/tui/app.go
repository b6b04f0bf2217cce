package tui

import (
	"tasknav/internal/store"
	"tasknav/internal/tasks"

	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the interactive task-search overlay over the given vault.
func Run(st store.Store) error {
	applyColorProfilePreference()
	applyThemePreference()

	index := tasks.NewIndex(st)
	if err := index.Rebuild(); err != nil {
		return err
	}

	m := newSearchModel(st, index)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
