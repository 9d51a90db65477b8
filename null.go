package dfrepr

import "github.com/apache/arrow-go/v18/arrow"

// renderContext selects the quoting and null-token rules for one rendering
// surface. The distinction between a missing value and a type's own NaN
// sentinel is resolved here and in formatFloat, nowhere else.
type renderContext int

const (
	// ctxCell: Series/DataFrame cells and frame row labels.
	ctxCell renderContext = iota
	// ctxIndexRepr: standalone flat-index reprs and category lists.
	ctxIndexRepr
	// ctxTuple: entries of MultiIndex tuples.
	ctxTuple
	// ctxPy: Python-literal positions (struct fields, names= metadata).
	ctxPy
)

// nullToken returns the display token for a missing value.
//
// The general rule is "<NA>" everywhere. Two legacy exceptions survive:
// object-dtype index reprs keep the bare
// "None" token, and datetime/timedelta entries inside index tuples carry
// their quotes into the null slot.
func nullToken(dt arrow.DataType, ctx renderContext) string {
	switch ctx {
	case ctxPy:
		return "None"
	case ctxIndexRepr:
		if dt.ID() == arrow.STRING {
			return "None"
		}
		return "<NA>"
	case ctxTuple:
		switch dt.ID() {
		case arrow.TIMESTAMP, arrow.DURATION:
			return "'<NA>'"
		}
		return "<NA>"
	}
	return "<NA>"
}
