package dfrepr

import (
	"fmt"
	"io"
	"strings"
)

// writeLaTeX emits a booktabs tabular. Row labels get one l-column per
// index level; data columns are right-aligned.
func writeLaTeX(w io.Writer, g *Grid) error {
	spec := strings.Repeat("l", len(g.IndexNames)) + strings.Repeat("r", len(g.ColumnLabels))
	if _, err := fmt.Fprintf(w, "\\begin{tabular}{%s}\n\\toprule\n", spec); err != nil {
		return err
	}

	header := make([]string, 0, len(g.IndexNames)+len(g.ColumnLabels))
	for _, n := range g.IndexNames {
		header = append(header, latexEscape(n))
	}
	for _, c := range g.ColumnLabels {
		header = append(header, latexEscape(c))
	}
	if _, err := fmt.Fprintf(w, "%s \\\\\n\\midrule\n", strings.Join(header, " & ")); err != nil {
		return err
	}

	for ri, row := range g.Rows {
		cells := make([]string, 0, len(header))
		for _, lab := range g.IndexLabels[ri] {
			cells = append(cells, latexEscape(lab))
		}
		for _, cell := range row {
			cells = append(cells, latexEscape(cell))
		}
		if _, err := fmt.Fprintf(w, "%s \\\\\n", strings.Join(cells, " & ")); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "\\bottomrule\n\\end{tabular}\n")
	return err
}

var latexReplacer = strings.NewReplacer(
	"\\", "\\textbackslash{}",
	"&", "\\&",
	"%", "\\%",
	"$", "\\$",
	"#", "\\#",
	"_", "\\_",
	"{", "\\{",
	"}", "\\}",
	"~", "\\textasciitilde{}",
	"^", "\\textasciicircum{}",
)

func latexEscape(s string) string { return latexReplacer.Replace(s) }
