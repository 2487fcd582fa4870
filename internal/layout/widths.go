// Package layout computes column widths for the repository table and
// reflows cell text into them.
//
// All widths are terminal display widths: East Asian wide characters count
// as two columns and combining marks as zero.
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/naka-gawa/github-profile-explorer/internal/domain"
)

// Widths holds one width per displayed column, indexed by domain.Column.
type Widths [domain.ColumnCount]int

// ReadabilityCaps are the widest the renderer lets each column grow.
var ReadabilityCaps = Widths{
	domain.ColumnName:        20,
	domain.ColumnDescription: 50,
	domain.ColumnTopics:      15,
	domain.ColumnLastUpdate:  20,
	domain.ColumnLanguage:    15,
	domain.ColumnStars:       5,
	domain.ColumnForks:       5,
}

// ComputeWidths returns, per column, the widest line of any record's display text.
// Absent fields are measured by their placeholder text. An empty set yields all zeros.
func ComputeWidths(repos []domain.Repository) Widths {
	var w Widths
	for _, r := range repos {
		fields := r.DisplayFields()
		for c, text := range fields {
			w[c] = max(w[c], DisplayWidth(text))
		}
	}
	return w
}

// DisplayWidth returns the display width of the widest line in s.
func DisplayWidth(s string) int {
	widest := 0
	for _, line := range splitLines(s) {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return widest
}

// Columns bounds the computed widths for rendering: a column is at most its
// cap and never narrower than its header.
func Columns(computed, caps Widths) Widths {
	var w Widths
	for c := range w {
		header := runewidth.StringWidth(domain.Column(c).Title())
		w[c] = max(min(computed[c], caps[c]), header)
	}
	return w
}

// Total returns the sum of all column widths.
func (w Widths) Total() int {
	total := 0
	for _, n := range w {
		total += n
	}
	return total
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
