package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-profile-explorer/internal/domain"
)

func testRepos(n int) []domain.Repository {
	repos := make([]domain.Repository, n)
	for i := range repos {
		repos[i] = domain.Repository{
			Name:            domain.String(string(rune('a'+i)) + "-repo"),
			Description:     domain.String("a repository used by the table tests"),
			Topics:          []string{"go", "tui"},
			StargazersCount: i,
		}
	}
	return repos
}

func sized(m Model, width, height int) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	require.True(t, ok)
	return model, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyJ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	keyK     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestModel_Navigation(t *testing.T) {
	m := NewModel("octo (org)", testRepos(3))

	m, _ = press(t, m, keyDown)
	assert.Equal(t, 1, m.State().Selected())

	m, _ = press(t, m, keyJ)
	assert.Equal(t, 2, m.State().Selected())

	m, _ = press(t, m, keyDown)
	assert.Equal(t, 0, m.State().Selected(), "down on the last row wraps to the first")

	m, _ = press(t, m, keyUp)
	assert.Equal(t, 2, m.State().Selected(), "up on the first row wraps to the last")

	m, _ = press(t, m, keyK)
	assert.Equal(t, 1, m.State().Selected())
}

func TestModel_ThemeCycling(t *testing.T) {
	m := NewModel("octo (org)", testRepos(1))
	assert.Equal(t, Palettes[0], m.Palette())

	m, _ = press(t, m, keyLeft)
	assert.Equal(t, Palettes[len(Palettes)-1], m.Palette())

	for range Palettes {
		m, _ = press(t, m, keyRight)
	}
	assert.Equal(t, Palettes[len(Palettes)-1], m.Palette())
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyEsc, keyQ, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := NewModel("octo (org)", testRepos(2))

			m, cmd := press(t, m, msg)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.State().Quitting())
			assert.Empty(t, m.View())

			m, _ = press(t, m, keyDown)
			assert.Equal(t, 0, m.State().Selected(), "no transitions after quit")
		})
	}
}

func TestModel_View(t *testing.T) {
	m := sized(NewModel("octo (org)", testRepos(2)), 200, 40)

	view := m.View()

	for _, want := range []string{
		"octo (org) · 2 repositories",
		"Name", "Description", "Topics", "Last update", "Language", "Star count", "Forks count",
		"a-repo", "b-repo", "go, tui", "N/A",
		highlightBar,
		"quit", "move down", "next color",
	} {
		assert.Contains(t, view, want)
	}
}

func TestModel_View_WrapsLongText(t *testing.T) {
	repos := []domain.Repository{{
		Name:        domain.String("wrapped"),
		Description: domain.String(strings.Repeat("word ", 60)),
	}}
	m := sized(NewModel("octo (user)", repos), 200, 40)

	view := m.View()

	assert.Contains(t, view, "…", "overflowing description is ellipsized")
	for _, line := range strings.Split(view, "\n") {
		assert.NotContains(t, line, strings.Repeat("word ", 11), "no line exceeds the description cap")
	}
}

func TestModel_View_Empty(t *testing.T) {
	m := sized(NewModel("octo (org)", nil), 120, 30)

	assert.NotPanics(t, func() {
		m, _ = press(t, m, keyDown)
		m, _ = press(t, m, keyUp)
	})
	view := m.View()

	assert.Contains(t, view, emptyTableText)
	assert.Contains(t, view, "0 repositories")
}

func TestModel_View_ClipsToWidth(t *testing.T) {
	m := sized(NewModel("octo (org)", testRepos(2)), 60, 30)

	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 60)
	}
}

func TestModel_View_KeepsSelectionVisible(t *testing.T) {
	m := sized(NewModel("octo (org)", testRepos(10)), 200, 1+1+3+2*4)
	for i := 0; i < 7; i++ {
		m, _ = press(t, m, keyDown)
	}

	view := m.View()

	assert.Contains(t, view, "h-repo")
	assert.Contains(t, view, "g-repo")
	assert.NotContains(t, view, "a-repo")
}

func TestFirstVisibleRow(t *testing.T) {
	assert.Equal(t, 0, firstVisibleRow(0, 5))
	assert.Equal(t, 0, firstVisibleRow(4, 5))
	assert.Equal(t, 1, firstVisibleRow(5, 5))
	assert.Equal(t, 7, firstVisibleRow(9, 3))
}

func TestScrollbarThumb(t *testing.T) {
	assert.Equal(t, 0, scrollbarThumb(0, 0, 10))
	assert.Equal(t, 0, scrollbarThumb(0, 36, 10))
	assert.Equal(t, 9, scrollbarThumb(36, 36, 10))
	assert.Equal(t, 4, scrollbarThumb(16, 36, 10))
	assert.Equal(t, 0, scrollbarThumb(8, 36, 1))
}

func TestPaletteAt(t *testing.T) {
	assert.Equal(t, Palettes[0], paletteAt(0))
	assert.Equal(t, Palettes[1], paletteAt(len(Palettes)+1))
	assert.Equal(t, Palettes[len(Palettes)-1], paletteAt(-1))
}

func TestSpinnerModel_Update(t *testing.T) {
	t.Run("action result ends the program", func(t *testing.T) {
		boom := errors.New("boom")
		updated, cmd := spinnerModel{title: "Fetching"}.Update(actionDoneMsg{err: boom})

		m := updated.(spinnerModel)
		assert.True(t, m.done)
		assert.Equal(t, boom, m.err)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	})

	t.Run("ctrl+c cancels the action", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		m := spinnerModel{title: "Fetching", ctx: ctx, cancel: cancel}

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

		assert.ErrorIs(t, updated.(spinnerModel).err, context.Canceled)
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	})
}
