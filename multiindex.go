package dfrepr

import (
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
)

// MultiIndex is a hierarchical row-label axis: parallel typed levels of
// equal length, one label tuple per row.
type MultiIndex struct {
	names  []string
	levels []arrow.Array
}

// NewMultiIndex builds a hierarchical index from parallel level arrays.
// names must match levels one to one; an empty name marks an unnamed level.
func NewMultiIndex(levels []arrow.Array, names []string) (*MultiIndex, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: multi-index needs at least one level", ErrLengthMismatch)
	}
	if len(names) != len(levels) {
		return nil, fmt.Errorf("%w: %d levels, %d names", ErrLengthMismatch, len(levels), len(names))
	}
	n := levels[0].Len()
	for _, lv := range levels[1:] {
		if lv.Len() != n {
			return nil, fmt.Errorf("%w: level lengths %d and %d", ErrLengthMismatch, n, lv.Len())
		}
	}
	return &MultiIndex{names: append([]string(nil), names...), levels: levels}, nil
}

func (mi *MultiIndex) Len() int { return mi.levels[0].Len() }

// NumLevels returns the number of label levels.
func (mi *MultiIndex) NumLevels() int { return len(mi.levels) }

// Names returns the level names, empty strings for unnamed levels.
func (mi *MultiIndex) Names() []string { return append([]string(nil), mi.names...) }

func (mi *MultiIndex) levelNames() []string { return mi.Names() }

func (mi *MultiIndex) rowLabels(keep []int) ([][]string, error) {
	out := make([][]string, len(mi.levels))
	for lv, arr := range mi.levels {
		col := make([]string, len(keep))
		for k, i := range keep {
			s, err := formatElem(arr, i, ctxCell)
			if err != nil {
				return nil, err
			}
			col[k] = s
		}
		out[lv] = col
	}
	return out, nil
}

// Render produces the tuple-form repr:
//
//	MultiIndex([(<NA>, 'abc'),
//	            (   1,  <NA>)],
//	           names=['a', 'b'])
//
// Entries are right-justified within each level, quotes included in the
// width. Continuation tuples indent under the opening bracket; the names
// line sits one column left of the tuples.
func (mi *MultiIndex) Render(limits Limits) (string, error) {
	if err := limits.Validate(); err != nil {
		return "", err
	}
	plan := truncate(mi.Len(), limits.MaxSeqItems, 0)
	keep := plan.kept()

	cols := make([][]string, len(mi.levels))
	for lv, arr := range mi.levels {
		col := make([]string, len(keep))
		for k, i := range keep {
			s, err := formatElem(arr, i, ctxTuple)
			if err != nil {
				return "", err
			}
			col[k] = s
		}
		cols[lv] = col
	}
	for lv := range cols {
		w := columnWidth(cols[lv]...)
		for k := range cols[lv] {
			cols[lv][k] = rjust(cols[lv][k], w)
		}
	}

	tuples := make([]string, len(keep))
	for k := range keep {
		parts := make([]string, len(cols))
		for lv := range cols {
			parts[lv] = cols[lv][k]
		}
		tuples[k] = "(" + strings.Join(parts, ", ") + ")"
	}

	rows := make([]string, 0, len(tuples)+1)
	rows = append(rows, tuples[:len(plan.head)]...)
	if plan.truncated {
		rows = append(rows, "...")
	}
	rows = append(rows, tuples[len(plan.head):]...)

	var lines []string
	indent := strings.Repeat(" ", len("MultiIndex(["))
	for k, row := range rows {
		prefix := indent
		if k == 0 {
			prefix = "MultiIndex(["
		}
		sep := ","
		switch {
		case k == len(rows)-1:
			sep = "],"
		case row == "...":
			sep = ""
		}
		lines = append(lines, prefix+row+sep)
	}
	if len(rows) == 0 {
		lines = append(lines, "MultiIndex([],")
	}

	trailer := strings.Repeat(" ", 8) + "names=[" + strings.Join(pyNames(mi.names), ", ") + "]"
	if plan.truncated {
		trailer += fmt.Sprintf(", length=%d", mi.Len())
	}
	lines = append(lines, trailer+")")
	return strings.Join(lines, "\n"), nil
}

func (mi *MultiIndex) String() string {
	s, err := mi.Render(DefaultLimits())
	if err != nil {
		return "MultiIndex(<" + err.Error() + ">)"
	}
	return s
}

// pyNames renders level names as Python literals: quoted when present,
// None when the level is unnamed.
func pyNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if n == "" {
			out[i] = "None"
		} else {
			out[i] = "'" + n + "'"
		}
	}
	return out
}
