package dfrepr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// formatElem renders element i of arr as text. Pure per-value formatting:
// no truncation, no padding. The switch is exhaustive over the supported
// type set; an unlisted type is an error, never a placeholder.
func formatElem(arr arrow.Array, i int, ctx renderContext) (string, error) {
	if arr.IsNull(i) {
		return nullToken(arr.DataType(), ctx), nil
	}
	switch a := arr.(type) {
	case *array.Int8:
		return strconv.FormatInt(int64(a.Value(i)), 10), nil
	case *array.Int16:
		return strconv.FormatInt(int64(a.Value(i)), 10), nil
	case *array.Int32:
		return strconv.FormatInt(int64(a.Value(i)), 10), nil
	case *array.Int64:
		return strconv.FormatInt(a.Value(i), 10), nil
	case *array.Uint8:
		return strconv.FormatUint(uint64(a.Value(i)), 10), nil
	case *array.Uint16:
		return strconv.FormatUint(uint64(a.Value(i)), 10), nil
	case *array.Uint32:
		return strconv.FormatUint(uint64(a.Value(i)), 10), nil
	case *array.Uint64:
		return strconv.FormatUint(a.Value(i), 10), nil
	case *array.Float32:
		return formatFloat(float64(a.Value(i)), 32, ctx), nil
	case *array.Float64:
		return formatFloat(a.Value(i), 64, ctx), nil
	case *array.String:
		s := a.Value(i)
		if quotesStrings(ctx) {
			return "'" + s + "'", nil
		}
		return s, nil
	case *array.Boolean:
		if a.Value(i) {
			return "True", nil
		}
		return "False", nil
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		s := formatDatetime(int64(a.Value(i)), unit)
		if ctx == ctxTuple {
			return "'" + s + "'", nil
		}
		return s, nil
	case *array.Duration:
		unit := a.DataType().(*arrow.DurationType).Unit
		s := formatTimedelta(int64(a.Value(i)), unit)
		if ctx == ctxTuple {
			return "'" + s + "'", nil
		}
		return s, nil
	case *array.Dictionary:
		return formatElem(a.Dictionary(), a.GetValueIndex(i), ctx)
	case *array.Struct:
		return formatStruct(a, i)
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, arr.DataType())
}

func quotesStrings(ctx renderContext) bool {
	return ctx == ctxTuple || ctx == ctxIndexRepr || ctx == ctxPy
}

// formatFloat renders a float in Python-repr style: shortest round-trippable
// form, a ".0" suffix on integral values, and context-dependent spelling of
// the NaN sentinel (which is a value here, not a null).
func formatFloat(v float64, bits int, ctx renderContext) string {
	switch {
	case math.IsNaN(v):
		if ctx == ctxTuple || ctx == ctxPy {
			return "nan"
		}
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if v == math.Trunc(v) && abs < 1e16 {
		return strconv.FormatFloat(v, 'f', 1, bits)
	}
	// Fixed notation inside the same range Python repr uses it; exponent
	// notation below 1e-4 and at 1e16 and beyond.
	if abs >= 1e-4 && abs < 1e16 {
		return strconv.FormatFloat(v, 'f', -1, bits)
	}
	return strconv.FormatFloat(v, 'g', -1, bits)
}

// unitsPerSecond returns how many ticks of the unit make one second.
func unitsPerSecond(unit arrow.TimeUnit) int64 {
	switch unit {
	case arrow.Second:
		return 1
	case arrow.Millisecond:
		return 1_000
	case arrow.Microsecond:
		return 1_000_000
	}
	return 1_000_000_000
}

// fracDigits is the fixed fractional width per unit: s=0, ms=3, us=6, ns=9.
func fracDigits(unit arrow.TimeUnit) int {
	switch unit {
	case arrow.Second:
		return 0
	case arrow.Millisecond:
		return 3
	case arrow.Microsecond:
		return 6
	}
	return 9
}

// formatDatetime renders an epoch offset in the given unit as
// "YYYY-MM-DD HH:MM:SS[.fraction]". The fractional part has the unit's fixed
// width and is never trimmed, even when all zero; second-unit values carry no
// decimal point at all.
func formatDatetime(v int64, unit arrow.TimeUnit) string {
	per := unitsPerSecond(unit)
	sec, frac := v/per, v%per
	if frac < 0 {
		sec--
		frac += per
	}
	base := time.Unix(sec, 0).UTC().Format("2006-01-02 15:04:05")
	if unit == arrow.Second {
		return base
	}
	return fmt.Sprintf("%s.%0*d", base, fracDigits(unit), frac)
}

// formatTimedelta renders a duration in the given unit as
// "[-]D days HH:MM:SS[.fraction]". Unlike datetimes, a fraction that is
// exactly zero is omitted together with its decimal point for every unit;
// a nonzero fraction is zero-padded to the unit's fixed width. A negative
// sign prefixes the whole string.
func formatTimedelta(v int64, unit arrow.TimeUnit) string {
	per := uint64(unitsPerSecond(unit))
	neg := v < 0
	// Negate in uint64 so the minimum int64 keeps its magnitude.
	u := uint64(v)
	if neg {
		u = -u
	}
	sec, frac := u/per, u%per
	days := sec / 86400
	rem := sec % 86400
	out := fmt.Sprintf("%d days %02d:%02d:%02d", days, rem/3600, (rem%3600)/60, rem%60)
	if frac != 0 {
		out += fmt.Sprintf(".%0*d", fracDigits(unit), frac)
	}
	if neg {
		out = "-" + out
	}
	return out
}

// formatStruct renders a struct element as Python dict text, e.g.
// {'sa': 2056831253}. Field nulls render as None; a null struct row is
// handled by the caller through the usual null path.
func formatStruct(a *array.Struct, i int) (string, error) {
	st := a.DataType().(*arrow.StructType)
	parts := make([]string, a.NumField())
	for j := 0; j < a.NumField(); j++ {
		val, err := formatElem(a.Field(j), i, ctxPy)
		if err != nil {
			return "", err
		}
		parts[j] = "'" + st.Field(j).Name + "': " + val
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}
