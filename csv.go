package dfrepr

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, g *Grid) error {
	cw := csv.NewWriter(w)
	header := append(append([]string{}, g.IndexNames...), g.ColumnLabels...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for ri, row := range g.Rows {
		rec := append(append([]string{}, g.IndexLabels[ri]...), row...)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
