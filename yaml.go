package dfrepr

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, g *Grid) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return err
	}
	return enc.Close()
}
