package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// actionDoneMsg signals the action completed
type actionDoneMsg struct {
	err error
}

// spinnerModel runs a spinner while an action executes
type spinnerModel struct {
	spinner spinner.Model
	title   string
	action  func(ctx context.Context) error
	ctx     context.Context
	cancel  context.CancelFunc
	done    bool
	err     error
}

// RunWithSpinner executes a blocking action while a spinner titled title is
// drawn on out. ctrl+c cancels the context passed to action and returns
// context.Canceled.
func RunWithSpinner(ctx context.Context, out io.Writer, title string, action func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorSlate200)

	m := spinnerModel{
		spinner: s,
		title:   title,
		action:  action,
		ctx:     ctx,
		cancel:  cancel,
	}

	finalModel, err := tea.NewProgram(m, tea.WithOutput(out)).Run()
	if err != nil {
		return fmt.Errorf("spinner program error: %w", err)
	}
	return finalModel.(spinnerModel).err
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.runAction(),
	)
}

func (m spinnerModel) runAction() tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.action(m.ctx)}
	}
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			m.done = true
			m.err = context.Canceled
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.title)
}
