package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/naka-gawa/github-profile-explorer/internal/browser"
	"github.com/naka-gawa/github-profile-explorer/internal/domain"
	"github.com/naka-gawa/github-profile-explorer/internal/layout"
)

// Layout constants
const (
	GutterWidth   = 3
	ColumnSpacing = 1
	TitleHeight   = 1
	HeaderHeight  = 1
	FooterHeight  = 3 // double border around one help line
)

const (
	highlightBar   = " █ "
	scrollTrack    = "│"
	scrollThumb    = "█"
	emptyTableText = "No repositories found."
)

// View implements tea.Model.
func (m Model) View() string {
	if m.state.Quitting() {
		return ""
	}
	colors := newTableColors(m.Palette())

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(colors),
		m.renderTable(colors),
		m.renderFooter(colors),
	)
	return m.clip(view)
}

// visibleRows returns how many rows fit between the title, header and footer.
func (m Model) visibleRows() int {
	avail := m.height - TitleHeight - HeaderHeight - FooterHeight
	return max(avail/browser.RowHeight, 1)
}

// firstVisibleRow returns the first row drawn so that the selection stays on screen.
func firstVisibleRow(selected, visible int) int {
	if selected >= visible {
		return selected - visible + 1
	}
	return 0
}

func (m Model) renderTitle(c tableColors) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(c.selectedFg).
		Render(m.summaryLine())
}

func (m Model) renderTable(c tableColors) string {
	lines := []string{m.renderHeader(c)}

	if len(m.repos) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(c.rowFg).
			Italic(true).
			Render(emptyTableText))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	visible := m.visibleRows()
	start := firstVisibleRow(m.state.Selected(), visible)
	end := min(start+visible, len(m.repos))
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(i, c))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	bar := renderScrollbar(lipgloss.Height(body), m.state.ScrollOffset(), m.state.ContentLength(), c)
	return lipgloss.JoinHorizontal(lipgloss.Top, body, " ", bar)
}

func (m Model) renderHeader(c tableColors) string {
	style := lipgloss.NewStyle().
		Foreground(c.headerFg).
		Background(c.headerBg)

	cells := []string{style.Width(GutterWidth).Render("")}
	for col := domain.Column(0); col < domain.ColumnCount; col++ {
		cells = append(cells,
			style.Width(ColumnSpacing).Render(""),
			style.Width(m.columns[col]).Render(col.Title()),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderRow(i int, c tableColors) string {
	bg := c.normalRowBg
	if i%2 == 1 {
		bg = c.altRowBg
	}
	style := lipgloss.NewStyle().
		Foreground(c.rowFg).
		Background(bg).
		Height(browser.RowHeight)

	gutter := ""
	if i == m.state.Selected() {
		style = style.Reverse(true).Foreground(c.selectedFg)
		gutter = strings.Join([]string{"", highlightBar, highlightBar, ""}, "\n")
	}

	cells := []string{style.Width(GutterWidth).Render(gutter)}
	for col, text := range m.repos[i].DisplayFields() {
		width := m.columns[col]
		cells = append(cells,
			style.Width(ColumnSpacing).Render(""),
			style.Width(width).Render(strings.Join(layout.Fit(text, width, browser.RowHeight), "\n")),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderFooter(c tableColors) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(c.footerBorder).
		Foreground(c.rowFg).
		Align(lipgloss.Center)
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	return style.Render(m.help.View(m.keys))
}

// scrollbarThumb places the thumb on a track of height lines for a scroll
// offset within a content of length lines.
func scrollbarThumb(offset, length, height int) int {
	if length <= 0 || height <= 1 {
		return 0
	}
	return min(offset*(height-1)/length, height-1)
}

func renderScrollbar(height, offset, length int, c tableColors) string {
	if height < 1 {
		return ""
	}
	track := lipgloss.NewStyle().Foreground(c.rowFg)
	thumbStyle := lipgloss.NewStyle().Foreground(c.selectedFg)

	thumb := scrollbarThumb(offset, length, height)
	lines := make([]string, height)
	for i := range lines {
		if i == thumb {
			lines[i] = thumbStyle.Render(scrollThumb)
		} else {
			lines[i] = track.Render(scrollTrack)
		}
	}
	return strings.Join(lines, "\n")
}

// clip cuts lines wider than the terminal.
func (m Model) clip(view string) string {
	if m.width <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.width, "")
	}
	return strings.Join(lines, "\n")
}
