package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Ellipsis marks a cell whose text did not fit its row.
const Ellipsis = "…"

// Wrap reflows text into lines no wider than width. Lines break at spaces
// where possible; words longer than width are split. Embedded line breaks are kept.
// A non-positive width leaves the text unwrapped.
func Wrap(text string, width int) []string {
	if width < 1 {
		return splitLines(text)
	}

	var out []string
	for _, line := range splitLines(text) {
		reflowed := wrap.String(wordwrap.String(line, width), width)
		for _, l := range strings.Split(reflowed, "\n") {
			out = append(out, strings.TrimRight(l, " "))
		}
	}
	return out
}

// Fit wraps text to width and keeps at most height lines. When lines are
// dropped, the last kept line ends with Ellipsis.
func Fit(text string, width, height int) []string {
	lines := Wrap(text, width)
	if height < 1 {
		return nil
	}
	if len(lines) <= height {
		return lines
	}

	lines = lines[:height]
	last := lines[height-1]
	if width < 1 || DisplayWidth(last) < width {
		lines[height-1] = last + Ellipsis
	} else {
		// A full line gives up its tail to the ellipsis.
		lines[height-1] = ansi.Truncate(last, width-runewidth.StringWidth(Ellipsis), "") + Ellipsis
	}
	return lines
}
