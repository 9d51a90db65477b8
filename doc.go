// Package dfrepr renders columnar data as display text the way an
// interactive dataframe shell would: truncated previews of Series,
// DataFrames and their indexes, with missing values, datetimes, timedeltas
// and categoricals spelled out in the conventional notation.
//
// Values live in Apache Arrow arrays; dfrepr only reads them. A [DataFrame]
// is an ordered set of equal-length [Column]s over a row-label axis, a
// [Series] is one column with its axis, and the axis itself is a
// [RangeIndex], a flat [Index], or a hierarchical [MultiIndex].
//
// # Rendering
//
// Every entity renders through an explicit [Limits] value; there is no
// package-level display state:
//
//	limits := dfrepr.DefaultLimits()
//	text, err := df.Render(limits)
//
// When a frame exceeds MaxRows or MaxColumns the middle is elided behind
// ellipsis markers and a "[R rows x C columns]" footer reports the true
// shape. Wide frames wrap into column bands at the configured line width.
//
// # Output formats
//
// [Write] and [Marshal] render a DataFrame in any supported [Format]. All
// formats derive from one [Grid]: the same truncation decisions and the
// same cell text, differing only in markup:
//
//	dfrepr.Write(os.Stdout, dfrepr.HTML, df, limits)
//
// Use [ParseFormat] to convert a CLI flag string into a [Format].
//
// # Missing values
//
// A null renders as "<NA>" in every surface except two legacy forms: the
// object-dtype index repr keeps the bare "None" token, and a float NaN is
// a value ("NaN" in cells, "nan" inside index tuples), never a null.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrUnsupportedType] — column type outside the supported set
//   - [ErrInvalidLimits] — negative display limits
//   - [ErrLengthMismatch] — columns or index of unequal length
package dfrepr
