package dfrepr

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render produces the plain-text frame repr: left-justified row labels,
// right-justified headers and cells, two-space column separators, greedy
// band wrapping at the display width, and a shape footer when truncated.
func (df *DataFrame) Render(limits Limits) (string, error) {
	if err := limits.Validate(); err != nil {
		return "", err
	}
	if df.NumCols() == 0 || df.NumRows() == 0 {
		return df.renderEmpty()
	}
	grid, err := BuildGrid(df, limits)
	if err != nil {
		return "", err
	}

	labelW := make([]int, len(grid.IndexNames))
	for lv, name := range grid.IndexNames {
		labelW[lv] = runewidth.StringWidth(name)
		for _, row := range grid.IndexLabels {
			if w := runewidth.StringWidth(row[lv]); w > labelW[lv] {
				labelW[lv] = w
			}
		}
	}
	labelTotal := 0
	for _, w := range labelW {
		labelTotal += w
	}
	labelTotal += len(labelW) - 1

	colW := make([]int, len(grid.ColumnLabels))
	for ci, h := range grid.ColumnLabels {
		colW[ci] = runewidth.StringWidth(h)
		for _, row := range grid.Rows {
			if w := runewidth.StringWidth(row[ci]); w > colW[ci] {
				colW[ci] = w
			}
		}
	}

	bands := bandColumns(colW, labelTotal, limits.effectiveWidth())

	hasNames := namedAxis(grid.IndexNames)

	var out []string
	for bi, band := range bands {
		suffix, headSuffix := "", ""
		if len(bands) > 1 {
			if bi < len(bands)-1 {
				suffix, headSuffix = "   ", "  \\"
			} else {
				suffix, headSuffix = "  ", "  "
			}
		}

		var lines []string
		var hb strings.Builder
		hb.WriteString(strings.Repeat(" ", labelTotal))
		for _, ci := range band {
			hb.WriteString("  ")
			h := grid.ColumnLabels[ci]
			// In continuation bands a single-character header sits one
			// column left of the cell edge.
			if bi < len(bands)-1 && runewidth.StringWidth(h) == 1 && colW[ci] > 1 {
				hb.WriteString(rjust(h, colW[ci]-1) + " ")
			} else {
				hb.WriteString(rjust(h, colW[ci]))
			}
		}
		lines = append(lines, hb.String()+headSuffix)

		if hasNames {
			parts := make([]string, len(grid.IndexNames))
			for lv, n := range grid.IndexNames {
				parts[lv] = ljust(n, labelW[lv])
			}
			lines = append(lines, strings.TrimRight(strings.Join(parts, " "), " "))
		}

		var prev []string
		for ri, row := range grid.Rows {
			labels := sparsifyLabels(grid.IndexLabels[ri], prev)
			prev = grid.IndexLabels[ri]
			var rb strings.Builder
			for lv, lab := range labels {
				if lv > 0 {
					rb.WriteString(" ")
				}
				rb.WriteString(ljust(lab, labelW[lv]))
			}
			for _, ci := range band {
				rb.WriteString("  ")
				rb.WriteString(rjust(row[ci], colW[ci]))
			}
			lines = append(lines, rb.String()+suffix)
		}
		out = append(out, strings.Join(lines, "\n"))
	}

	text := strings.Join(out, "\n\n")
	if grid.RowsTruncated || grid.ColsTruncated {
		text += fmt.Sprintf("\n\n[%d rows x %d columns]", grid.NumRows, grid.NumCols)
	}
	return text, nil
}

// sparsifyLabels blanks leading index levels that repeat the previous
// row's labels. The deepest level always prints, and once a level
// differs every level below it prints too.
func sparsifyLabels(cur, prev []string) []string {
	if len(cur) < 2 || len(prev) != len(cur) {
		return cur
	}
	out := make([]string, len(cur))
	copy(out, cur)
	for lv := 0; lv < len(cur)-1; lv++ {
		if cur[lv] != prev[lv] {
			break
		}
		out[lv] = ""
	}
	return out
}

func (df *DataFrame) renderEmpty() (string, error) {
	var labels []string
	if df.NumRows() > 0 {
		keep := make([]int, df.NumRows())
		for i := range keep {
			keep[i] = i
		}
		cols, err := df.index.rowLabels(keep)
		if err != nil {
			return "", err
		}
		labels = make([]string, df.NumRows())
		for i := range labels {
			parts := make([]string, len(cols))
			for lv := range cols {
				parts[lv] = cols[lv][i]
			}
			labels[i] = strings.Join(parts, ", ")
			if len(cols) > 1 {
				labels[i] = "(" + labels[i] + ")"
			}
		}
	}
	return fmt.Sprintf("Empty DataFrame\nColumns: [%s]\nIndex: [%s]",
		strings.Join(df.ColumnNames(), ", "), strings.Join(labels, ", ")), nil
}

// bandColumns splits column positions into display bands: each band holds
// as many columns as fit in width after the label block, at a cost of two
// separator spaces plus the column width. A column wider than the whole
// line still gets a band to itself.
func bandColumns(colW []int, labelTotal, width int) [][]int {
	var bands [][]int
	var cur []int
	used := labelTotal
	for ci, w := range colW {
		cost := 2 + w
		if len(cur) > 0 && used+cost > width {
			bands = append(bands, cur)
			cur = nil
			used = labelTotal
		}
		cur = append(cur, ci)
		used += cost
	}
	if len(cur) > 0 {
		bands = append(bands, cur)
	}
	return bands
}
