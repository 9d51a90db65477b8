package dfrepr

import (
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Series is a single named column of values with a row-label axis.
type Series struct {
	name   string
	values arrow.Array
	index  AxisIndex
}

// NewSeries wraps an Arrow array as an unnamed series over a positional
// index. The array is an immutable snapshot owned by the caller.
func NewSeries(values arrow.Array) *Series {
	return &Series{values: values, index: NewRangeIndex(values.Len())}
}

// Named returns a copy of the series carrying a display name.
func (s *Series) Named(name string) *Series {
	return &Series{name: name, values: s.values, index: s.index}
}

// WithIndex returns a copy of the series with labels taken from ix. The
// index length must match the value count.
func (s *Series) WithIndex(ix AxisIndex) (*Series, error) {
	if ix.Len() != s.values.Len() {
		return nil, fmt.Errorf("%w: %d values, %d index labels", ErrLengthMismatch, s.values.Len(), ix.Len())
	}
	return &Series{name: s.name, values: s.values, index: ix}, nil
}

func (s *Series) Len() int { return s.values.Len() }

// Name returns the series display name, empty when unnamed.
func (s *Series) Name() string { return s.name }

// DType returns the display dtype name, e.g. "timedelta64[ns]".
func (s *Series) DType() (string, error) { return dtypeName(s.values.DataType()) }

// Render produces the text repr: index labels left-justified, values
// right-justified, a dtype footer, and for truncated output an ellipsis
// row plus a Length field in the footer.
func (s *Series) Render(limits Limits) (string, error) {
	if err := limits.Validate(); err != nil {
		return "", err
	}
	dtype, err := s.DType()
	if err != nil {
		return "", err
	}

	if s.Len() == 0 {
		if s.name != "" {
			return fmt.Sprintf("Series([], Name: %s, dtype: %s)", s.name, dtype), nil
		}
		return fmt.Sprintf("Series([], dtype: %s)", dtype), nil
	}

	plan := truncate(s.Len(), limits.MaxRows, limits.MinRows)
	keep := plan.kept()

	labels, err := s.index.rowLabels(keep)
	if err != nil {
		return "", err
	}
	vals := make([]string, len(keep))
	for k, i := range keep {
		v, err := formatElem(s.values, i, ctxCell)
		if err != nil {
			return "", err
		}
		vals[k] = v
	}

	// Widths include the ellipsis row so "..." never overflows a column.
	ellipsisAt := -1
	if plan.truncated {
		ellipsisAt = len(plan.head)
		for lv := range labels {
			labels[lv] = insertAt(labels[lv], ellipsisAt, "...")
		}
		vals = insertAt(vals, ellipsisAt, "...")
	}

	labelWidths := make([]int, len(labels))
	for lv := range labels {
		labelWidths[lv] = columnWidth(labels[lv]...)
	}
	valWidth := columnWidth(vals...)

	var sb strings.Builder
	var prev []string
	for k := range vals {
		row := make([]string, len(labels))
		for lv := range labels {
			row[lv] = labels[lv][k]
		}
		disp := sparsifyLabels(row, prev)
		prev = row
		for lv := range disp {
			sb.WriteString(ljust(disp[lv], labelWidths[lv]))
			sb.WriteString(" ")
		}
		sb.WriteString("   ")
		sb.WriteString(rjust(vals[k], valWidth))
		sb.WriteString("\n")
	}
	sb.WriteString(s.footer(plan.truncated, dtype))
	if cat, ok := s.values.(*array.Dictionary); ok {
		line, err := categoriesFooter(cat)
		if err != nil {
			return "", err
		}
		sb.WriteString("\n")
		sb.WriteString(line)
	}
	return sb.String(), nil
}

func (s *Series) String() string {
	out, err := s.Render(DefaultLimits())
	if err != nil {
		return "Series(<" + err.Error() + ">)"
	}
	return out
}

func (s *Series) footer(truncated bool, dtype string) string {
	var parts []string
	if s.name != "" {
		parts = append(parts, "Name: "+s.name)
	}
	if truncated {
		parts = append(parts, fmt.Sprintf("Length: %d", s.Len()))
	}
	parts = append(parts, "dtype: "+dtype)
	return strings.Join(parts, ", ")
}

// categoriesFooter renders the trailing category inventory, e.g.
//
//	Categories (4, float64): [1.0, 2.0, 10.0, NaN]
func categoriesFooter(cat *array.Dictionary) (string, error) {
	dict := cat.Dictionary()
	catDtype, err := dtypeName(dict.DataType())
	if err != nil {
		return "", err
	}
	list, err := categoryList(dict)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Categories (%d, %s): [%s]", dict.Len(), catDtype, list), nil
}

func insertAt(xs []string, i int, v string) []string {
	out := make([]string, 0, len(xs)+1)
	out = append(out, xs[:i]...)
	out = append(out, v)
	return append(out, xs[i:]...)
}
