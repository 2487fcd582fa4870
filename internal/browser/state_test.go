package browser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testPalettes = 4

func TestNew(t *testing.T) {
	s := New(10, testPalettes)

	assert.Equal(t, 0, s.Selected())
	assert.Equal(t, 0, s.Theme())
	assert.Equal(t, 0, s.ScrollOffset())
	assert.Equal(t, 10, s.Len())
	assert.False(t, s.Quitting())
}

func TestSelectionWrapsAround(t *testing.T) {
	for _, rows := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("%d rows", rows), func(t *testing.T) {
			s := New(rows, testPalettes)

			s.SelectPrevious()
			assert.Equal(t, rows-1, s.Selected(), "previous from the first row selects the last")

			s.SelectNext()
			assert.Equal(t, 0, s.Selected(), "next from the last row selects the first")
		})
	}
}

func TestSelectNext_Walk(t *testing.T) {
	s := New(3, testPalettes)
	var seen []int
	for i := 0; i < 6; i++ {
		s.SelectNext()
		seen = append(seen, s.Selected())
	}
	assert.Equal(t, []int{1, 2, 0, 1, 2, 0}, seen)
}

func TestScrollOffsetFollowsSelection(t *testing.T) {
	s := New(5, testPalettes)
	s.SelectNext()
	s.SelectNext()

	assert.Equal(t, 2*RowHeight, s.ScrollOffset())
	assert.Equal(t, 4*RowHeight, s.ContentLength())

	s.SelectPrevious()
	assert.Equal(t, RowHeight, s.ScrollOffset())
}

func TestThemeCycling(t *testing.T) {
	t.Run("forward full cycle returns to start", func(t *testing.T) {
		s := New(3, testPalettes)
		s.CycleThemeForward()
		start := s.Theme()
		for i := 0; i < testPalettes; i++ {
			s.CycleThemeForward()
		}
		assert.Equal(t, start, s.Theme())
	})

	t.Run("backward from first wraps to last", func(t *testing.T) {
		s := New(3, testPalettes)
		s.CycleThemeBackward()
		assert.Equal(t, testPalettes-1, s.Theme())
		s.CycleThemeForward()
		assert.Equal(t, 0, s.Theme())
	})
}

func TestEmptyTable(t *testing.T) {
	s := New(0, testPalettes)

	assert.NotPanics(t, func() {
		s.SelectNext()
		s.SelectPrevious()
	})
	assert.Equal(t, 0, s.Selected())
	assert.Equal(t, 0, s.ScrollOffset())
	assert.Equal(t, 0, s.ContentLength())

	s.CycleThemeForward()
	assert.Equal(t, 1, s.Theme())
}

func TestNoPalettes(t *testing.T) {
	s := New(2, 0)
	assert.NotPanics(t, func() {
		s.CycleThemeForward()
		s.CycleThemeBackward()
	})
	assert.Equal(t, 0, s.Theme())
}

func TestQuitStopsTransitions(t *testing.T) {
	s := New(3, testPalettes)
	s.SelectNext()
	s.Quit()

	s.SelectNext()
	s.CycleThemeForward()

	assert.True(t, s.Quitting())
	assert.Equal(t, 1, s.Selected())
	assert.Equal(t, 0, s.Theme())
}
