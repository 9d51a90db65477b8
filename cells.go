package dfrepr

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls cell text alignment within a padded width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}

func ljust(s string, width int) string { return alignCell(s, width, AlignLeft) }
func rjust(s string, width int) string { return alignCell(s, width, AlignRight) }

// columnWidth returns the display width of the widest cell.
func columnWidth(cells ...string) int {
	w := 0
	for _, c := range cells {
		if cw := runewidth.StringWidth(c); cw > w {
			w = cw
		}
	}
	return w
}
