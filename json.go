package dfrepr

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, g *Grid) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}
