package dfrepr

import "fmt"

// Unlimited disables a limit when assigned to a Limits field.
const Unlimited = 0

// Limits bounds how much of an entity a render call may show. Limits are
// passed explicitly to every render call; the package holds no mutable
// display state, so concurrent renders with different limits never interfere.
type Limits struct {
	// MaxRows is the row count above which a Series or DataFrame is
	// truncated to a head and a tail separated by an ellipsis row.
	MaxRows int

	// MinRows is the number of rows actually shown once MaxRows is
	// exceeded. Ignored when zero or when MaxRows <= MinRows.
	MinRows int

	// MaxColumns is the column count above which a DataFrame elides
	// middle columns behind an ellipsis column.
	MaxColumns int

	// MaxSeqItems bounds element lists in Index and MultiIndex reprs.
	MaxSeqItems int

	// Width is the target line width for wide-table band wrapping and
	// Index repr line wrapping.
	Width int
}

// DefaultLimits matches the usual interactive display defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxRows:     60,
		MinRows:     10,
		MaxColumns:  20,
		MaxSeqItems: 100,
		Width:       80,
	}
}

// Validate reports whether the limits are usable. Zero means unlimited;
// negative values are rejected here, at the call boundary, rather than deep
// inside formatting.
func (l Limits) Validate() error {
	if l.MaxRows < 0 || l.MinRows < 0 || l.MaxColumns < 0 || l.MaxSeqItems < 0 || l.Width < 0 {
		return fmt.Errorf("%w: negative values not allowed: %+v", ErrInvalidLimits, l)
	}
	return nil
}

// effectiveWidth returns the wrapping width, falling back to the default
// when unlimited.
func (l Limits) effectiveWidth() int {
	if l.Width == Unlimited {
		return 80
	}
	return l.Width
}
