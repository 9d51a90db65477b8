package dfrepr

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Column is one named column of a DataFrame.
type Column struct {
	Name   string
	Values arrow.Array
}

// DataFrame is an ordered set of equal-length columns over a row-label axis.
type DataFrame struct {
	columns []Column
	index   AxisIndex
}

// NewDataFrame builds a frame from columns in display order. Columns must
// share one length; a frame with zero columns has zero rows.
func NewDataFrame(columns []Column) (*DataFrame, error) {
	n := 0
	if len(columns) > 0 {
		n = columns[0].Values.Len()
	}
	for _, c := range columns {
		if c.Values.Len() != n {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrLengthMismatch, c.Name, c.Values.Len(), n)
		}
	}
	return &DataFrame{columns: columns, index: NewRangeIndex(n)}, nil
}

// WithIndex returns a copy of the frame with labels taken from ix. The
// index length must match the row count; a column-less frame takes its row
// count from the index.
func (df *DataFrame) WithIndex(ix AxisIndex) (*DataFrame, error) {
	if len(df.columns) > 0 && ix.Len() != df.columns[0].Values.Len() {
		return nil, fmt.Errorf("%w: %d rows, %d index labels", ErrLengthMismatch, df.columns[0].Values.Len(), ix.Len())
	}
	return &DataFrame{columns: df.columns, index: ix}, nil
}

// NumRows returns the row count.
func (df *DataFrame) NumRows() int {
	if len(df.columns) == 0 {
		return df.index.Len()
	}
	return df.columns[0].Values.Len()
}

// NumCols returns the column count.
func (df *DataFrame) NumCols() int { return len(df.columns) }

// ColumnNames returns the column names in display order.
func (df *DataFrame) ColumnNames() []string {
	out := make([]string, len(df.columns))
	for i, c := range df.columns {
		out[i] = c.Name
	}
	return out
}

// Index returns the row-label axis.
func (df *DataFrame) Index() AxisIndex { return df.index }

func (df *DataFrame) String() string {
	out, err := df.Render(DefaultLimits())
	if err != nil {
		return "DataFrame(<" + err.Error() + ">)"
	}
	return out
}
