package dfrepr

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeMarkdown renders a GitHub-flavored table: label columns
// left-aligned, data columns right-aligned, widths padded for readability.
func writeMarkdown(w io.Writer, g *Grid) error {
	nLabels := len(g.IndexNames)
	numCols := nLabels + len(g.ColumnLabels)

	header := make([]string, 0, numCols)
	header = append(header, g.IndexNames...)
	header = append(header, g.ColumnLabels...)

	rows := make([][]string, len(g.Rows))
	for ri, row := range g.Rows {
		rows[ri] = append(append([]string{}, g.IndexLabels[ri]...), row...)
	}

	// Column widths, minimum 3 for the alignment markers.
	widths := make([]int, numCols)
	for i, col := range header {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	align := func(i int) Alignment {
		if i < nLabels {
			return AlignLeft
		}
		return AlignRight
	}

	writeRow := func(cells []string) error {
		padded := make([]string, numCols)
		for i, width := range widths {
			padded[i] = alignCell(cells[i], width, align(i))
		}
		_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
		return err
	}

	if err := writeRow(header); err != nil {
		return err
	}
	sep := make([]string, numCols)
	for i, width := range widths {
		if align(i) == AlignRight {
			sep[i] = strings.Repeat("-", width-1) + ":"
		} else {
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}
