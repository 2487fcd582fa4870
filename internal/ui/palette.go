package ui

import "github.com/charmbracelet/lipgloss"

// Palette is a named accent color pair used to theme the table.
type Palette struct {
	Name   string
	Accent lipgloss.Color // tailwind 400 shade
	Deep   lipgloss.Color // tailwind 900 shade
}

// Palettes is the fixed set of themes, cycled with ←/→.
var Palettes = [...]Palette{
	{Name: "blue", Accent: lipgloss.Color("#60a5fa"), Deep: lipgloss.Color("#1e3a8a")},
	{Name: "emerald", Accent: lipgloss.Color("#34d399"), Deep: lipgloss.Color("#064e3b")},
	{Name: "indigo", Accent: lipgloss.Color("#818cf8"), Deep: lipgloss.Color("#312e81")},
	{Name: "red", Accent: lipgloss.Color("#f87171"), Deep: lipgloss.Color("#7f1d1d")},
}

// Neutral colors shared by every palette (tailwind slate)
var (
	ColorSlate200 = lipgloss.Color("#e2e8f0")
	ColorSlate900 = lipgloss.Color("#0f172a")
	ColorSlate950 = lipgloss.Color("#020617")
)

// tableColors resolves a Palette into the colors of each table element.
type tableColors struct {
	headerBg     lipgloss.Color
	headerFg     lipgloss.Color
	rowFg        lipgloss.Color
	selectedFg   lipgloss.Color
	normalRowBg  lipgloss.Color
	altRowBg     lipgloss.Color
	footerBorder lipgloss.Color
}

func newTableColors(p Palette) tableColors {
	return tableColors{
		headerBg:     p.Deep,
		headerFg:     ColorSlate200,
		rowFg:        ColorSlate200,
		selectedFg:   p.Accent,
		normalRowBg:  ColorSlate950,
		altRowBg:     ColorSlate900,
		footerBorder: p.Accent,
	}
}

// paletteAt returns the palette for a theme index, wrapping out-of-range values.
func paletteAt(i int) Palette {
	n := len(Palettes)
	return Palettes[((i%n)+n)%n]
}
