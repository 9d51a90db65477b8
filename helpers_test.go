package dfrepr_test

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Builder helpers. valid==nil means every value is present.

func int64s(t *testing.T, vals []int64, valid []bool) arrow.Array {
	t.Helper()
	b := array.NewInt64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, valid)
	return b.NewArray()
}

func float64s(t *testing.T, vals []float64, valid []bool) arrow.Array {
	t.Helper()
	b := array.NewFloat64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, valid)
	return b.NewArray()
}

func strs(t *testing.T, vals []string, valid []bool) arrow.Array {
	t.Helper()
	b := array.NewStringBuilder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, valid)
	return b.NewArray()
}

func bools(t *testing.T, vals []bool, valid []bool) arrow.Array {
	t.Helper()
	b := array.NewBooleanBuilder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, valid)
	return b.NewArray()
}

func durations(t *testing.T, unit arrow.TimeUnit, vals []int64, valid []bool) arrow.Array {
	t.Helper()
	b := array.NewDurationBuilder(memory.DefaultAllocator, &arrow.DurationType{Unit: unit})
	defer b.Release()
	ds := make([]arrow.Duration, len(vals))
	for i, v := range vals {
		ds[i] = arrow.Duration(v)
	}
	b.AppendValues(ds, valid)
	return b.NewArray()
}

func timestamps(t *testing.T, unit arrow.TimeUnit, vals []int64, valid []bool) arrow.Array {
	t.Helper()
	b := array.NewTimestampBuilder(memory.DefaultAllocator, &arrow.TimestampType{Unit: unit})
	defer b.Release()
	ts := make([]arrow.Timestamp, len(vals))
	for i, v := range vals {
		ts[i] = arrow.Timestamp(v)
	}
	b.AppendValues(ts, valid)
	return b.NewArray()
}

// categories builds a dictionary array: codes index into dict, a negative
// code marks a null entry.
func categories(t *testing.T, dict arrow.Array, codes []int, ordered bool) arrow.Array {
	t.Helper()
	b := array.NewInt32Builder(memory.DefaultAllocator)
	defer b.Release()
	for _, c := range codes {
		if c < 0 {
			b.AppendNull()
		} else {
			b.Append(int32(c))
		}
	}
	indices := b.NewArray()
	defer indices.Release()
	typ := &arrow.DictionaryType{
		IndexType: arrow.PrimitiveTypes.Int32,
		ValueType: dict.DataType(),
		Ordered:   ordered,
	}
	return array.NewDictionaryArray(typ, indices, dict)
}

func rangeInt64s(t *testing.T, n int) arrow.Array {
	t.Helper()
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = int64(i)
	}
	return int64s(t, vals, nil)
}
