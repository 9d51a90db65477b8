package dfrepr

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// dtypeName maps an Arrow type to its display dtype name. The switch is the
// closed set of supported column types; anything else is an error, never a
// silent placeholder.
func dtypeName(dt arrow.DataType) (string, error) {
	switch t := dt.(type) {
	case *arrow.Int8Type:
		return "int8", nil
	case *arrow.Int16Type:
		return "int16", nil
	case *arrow.Int32Type:
		return "int32", nil
	case *arrow.Int64Type:
		return "int64", nil
	case *arrow.Uint8Type:
		return "uint8", nil
	case *arrow.Uint16Type:
		return "uint16", nil
	case *arrow.Uint32Type:
		return "uint32", nil
	case *arrow.Uint64Type:
		return "uint64", nil
	case *arrow.Float32Type:
		return "float32", nil
	case *arrow.Float64Type:
		return "float64", nil
	case *arrow.StringType:
		return "object", nil
	case *arrow.BooleanType:
		return "bool", nil
	case *arrow.TimestampType:
		return "datetime64[" + t.Unit.String() + "]", nil
	case *arrow.DurationType:
		return "timedelta64[" + t.Unit.String() + "]", nil
	case *arrow.DictionaryType:
		return "category", nil
	case *arrow.StructType:
		return "struct", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, dt)
}

// indexClassName maps an Arrow type to the class name used in standalone
// index reprs (Int64Index, StringIndex, DatetimeIndex, ...).
func indexClassName(dt arrow.DataType) (string, error) {
	switch dt.(type) {
	case *arrow.Int8Type:
		return "Int8Index", nil
	case *arrow.Int16Type:
		return "Int16Index", nil
	case *arrow.Int32Type:
		return "Int32Index", nil
	case *arrow.Int64Type:
		return "Int64Index", nil
	case *arrow.Uint8Type:
		return "UInt8Index", nil
	case *arrow.Uint16Type:
		return "UInt16Index", nil
	case *arrow.Uint32Type:
		return "UInt32Index", nil
	case *arrow.Uint64Type:
		return "UInt64Index", nil
	case *arrow.Float32Type:
		return "Float32Index", nil
	case *arrow.Float64Type:
		return "Float64Index", nil
	case *arrow.StringType:
		return "StringIndex", nil
	case *arrow.TimestampType:
		return "DatetimeIndex", nil
	case *arrow.DurationType:
		return "TimedeltaIndex", nil
	case *arrow.DictionaryType:
		return "CategoricalIndex", nil
	}
	return "", fmt.Errorf("%w: %s cannot back an index", ErrUnsupportedType, dt)
}
