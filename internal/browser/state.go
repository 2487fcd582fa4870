// Package browser holds the navigation state of the repository table.
//
// State is a small machine over (selected row, palette). Every transition
// wraps around, so the selection is always a valid row of a non-empty table.
package browser

// RowHeight is the number of terminal lines a table row occupies.
const RowHeight = 4

// State is the selection, scroll and theme state of one browsing session.
type State struct {
	rows     int
	palettes int
	selected int
	theme    int
	quitting bool
}

// New returns the initial state for a table of rows records themed by one
// of palettes palettes: first row selected, first palette active.
func New(rows, palettes int) *State {
	return &State{
		rows:     max(rows, 0),
		palettes: max(palettes, 0),
	}
}

// SelectNext moves the selection down, wrapping from the last row to the first.
func (s *State) SelectNext() {
	if s.quitting || s.rows == 0 {
		return
	}
	s.selected = (s.selected + 1) % s.rows
}

// SelectPrevious moves the selection up, wrapping from the first row to the last.
func (s *State) SelectPrevious() {
	if s.quitting || s.rows == 0 {
		return
	}
	s.selected = (s.selected - 1 + s.rows) % s.rows
}

// CycleThemeForward activates the next palette.
func (s *State) CycleThemeForward() {
	if s.quitting || s.palettes == 0 {
		return
	}
	s.theme = (s.theme + 1) % s.palettes
}

// CycleThemeBackward activates the previous palette.
func (s *State) CycleThemeBackward() {
	if s.quitting || s.palettes == 0 {
		return
	}
	s.theme = (s.theme - 1 + s.palettes) % s.palettes
}

// Quit ends the session. Later transitions are ignored.
func (s *State) Quit() {
	s.quitting = true
}

// Quitting reports whether Quit was called.
func (s *State) Quitting() bool {
	return s.quitting
}

// Len returns the number of rows.
func (s *State) Len() int {
	return s.rows
}

// Selected returns the index of the selected row. It is 0 for an empty table.
func (s *State) Selected() int {
	return s.selected
}

// Theme returns the index of the active palette.
func (s *State) Theme() int {
	return s.theme
}

// ScrollOffset returns the line offset of the selected row.
func (s *State) ScrollOffset() int {
	return s.selected * RowHeight
}

// ContentLength returns the scrollable length in lines: the offset of the last row.
func (s *State) ContentLength() int {
	if s.rows == 0 {
		return 0
	}
	return (s.rows - 1) * RowHeight
}
