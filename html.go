package dfrepr

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, g *Grid) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for range g.IndexNames {
		if _, err := fmt.Fprintln(w, "      <th></th>"); err != nil {
			return err
		}
	}
	for _, col := range g.ColumnLabels {
		if _, err := fmt.Fprintf(w, "      <th>%s</th>\n", html.EscapeString(col)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
		return err
	}
	if namedAxis(g.IndexNames) {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, n := range g.IndexNames {
			if _, err := fmt.Fprintf(w, "      <th>%s</th>\n", html.EscapeString(n)); err != nil {
				return err
			}
		}
		for range g.ColumnLabels {
			if _, err := fmt.Fprintln(w, "      <th></th>"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for ri, row := range g.Rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, lab := range g.IndexLabels[ri] {
			if _, err := fmt.Fprintf(w, "      <th>%s</th>\n", html.EscapeString(lab)); err != nil {
				return err
			}
		}
		for _, cell := range row {
			if _, err := fmt.Fprintf(w, "      <td>%s</td>\n", html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "</table>"); err != nil {
		return err
	}

	if g.RowsTruncated || g.ColsTruncated {
		_, err := fmt.Fprintf(w, "<p>%d rows x %d columns</p>\n", g.NumRows, g.NumCols)
		return err
	}
	return nil
}

func namedAxis(names []string) bool {
	for _, n := range names {
		if n != "" {
			return true
		}
	}
	return false
}
