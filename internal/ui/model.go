// Package ui renders the repository table and runs the interactive browser.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naka-gawa/github-profile-explorer/internal/browser"
	"github.com/naka-gawa/github-profile-explorer/internal/domain"
	"github.com/naka-gawa/github-profile-explorer/internal/layout"
	"github.com/naka-gawa/github-profile-explorer/internal/usecase"
)

// Model is the bubbletea model of the table browser.
// The repositories are fixed for its lifetime; only the browser state changes.
type Model struct {
	title   string
	repos   []domain.Repository
	columns layout.Widths
	summary usecase.Summary

	state *browser.State
	keys  KeyMap
	help  help.Model

	width  int
	height int
}

// NewModel creates the browser for repos. title names the listed account.
func NewModel(title string, repos []domain.Repository) Model {
	h := help.New()
	h.ShortSeparator = " | "

	return Model{
		title:   title,
		repos:   repos,
		columns: layout.Columns(layout.ComputeWidths(repos), layout.ReadabilityCaps),
		summary: usecase.Summarize(repos),
		state:   browser.New(len(repos), len(Palettes)),
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state.Quitting() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.state.Quit()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m.state.SelectNext()
		case key.Matches(msg, m.keys.Up):
			m.state.SelectPrevious()
		case key.Matches(msg, m.keys.NextTheme):
			m.state.CycleThemeForward()
		case key.Matches(msg, m.keys.PreviousTheme):
			m.state.CycleThemeBackward()
		}
	}
	return m, nil
}

// State exposes the navigation state.
func (m Model) State() *browser.State {
	return m.state
}

// Palette returns the active palette.
func (m Model) Palette() Palette {
	return paletteAt(m.state.Theme())
}

func (m Model) summaryLine() string {
	s := m.summary
	return fmt.Sprintf("%s · %d repositories · ★ %d (median %.1f) · ⑂ %d",
		m.title, s.Repositories, s.TotalStars, s.MedianStars, s.TotalForks)
}
