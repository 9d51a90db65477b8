package dfrepr_test

import (
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfrepr/dfrepr"
)

func render(t *testing.T, s *dfrepr.Series) string {
	t.Helper()
	out, err := s.Render(dfrepr.DefaultLimits())
	require.NoError(t, err)
	return out
}

func TestSeriesEmpty(t *testing.T) {
	t.Parallel()
	s := dfrepr.NewSeries(durations(t, arrow.Nanosecond, nil, nil))
	assert.Equal(t, "Series([], dtype: timedelta64[ns])", render(t, s))
}

func TestSeriesEmptyNamed(t *testing.T) {
	t.Parallel()
	s := dfrepr.NewSeries(strs(t, nil, nil)).Named("abc")
	assert.Equal(t, "Series([], Name: abc, dtype: object)", render(t, s))
}

func TestSeriesTimedeltaNanos(t *testing.T) {
	t.Parallel()
	s := dfrepr.NewSeries(durations(t, arrow.Nanosecond, []int64{1000000, 200000, 3000000}, nil))
	want := strings.Join([]string{
		"0    0 days 00:00:00.001000000",
		"1    0 days 00:00:00.000200000",
		"2    0 days 00:00:00.003000000",
		"dtype: timedelta64[ns]",
	}, "\n")
	assert.Equal(t, want, render(t, s))
}

func TestSeriesTimedeltaMillisWithNull(t *testing.T) {
	t.Parallel()
	s := dfrepr.NewSeries(durations(t, arrow.Millisecond,
		[]int64{1000000, 200000, 0}, []bool{true, true, false}))
	want := strings.Join([]string{
		"0    0 days 00:16:40",
		"1    0 days 00:03:20",
		"2               <NA>",
		"dtype: timedelta64[ms]",
	}, "\n")
	assert.Equal(t, want, render(t, s))
}

func TestSeriesAllNull(t *testing.T) {
	t.Parallel()
	s := dfrepr.NewSeries(durations(t, arrow.Nanosecond,
		make([]int64, 5), []bool{false, false, false, false, false}))
	want := strings.Join([]string{
		"0    <NA>",
		"1    <NA>",
		"2    <NA>",
		"3    <NA>",
		"4    <NA>",
		"dtype: timedelta64[ns]",
	}, "\n")
	assert.Equal(t, want, render(t, s))
}

func TestSeriesNamedFooter(t *testing.T) {
	t.Parallel()
	s := dfrepr.NewSeries(durations(t, arrow.Millisecond,
		[]int64{13645765432432, 134736784}, nil)).Named("abc")
	want := strings.Join([]string{
		"0    157937 days 02:23:52.432",
		"1         1 days 13:25:36.784",
		"Name: abc, dtype: timedelta64[ms]",
	}, "\n")
	assert.Equal(t, want, render(t, s))
}

func TestSeriesStringIndexLabels(t *testing.T) {
	t.Parallel()
	base := dfrepr.NewSeries(int64s(t, []int64{10, 20, 30}, nil))
	s, err := base.WithIndex(dfrepr.NewIndex(strs(t, []string{"a", "b", "z"}, nil)))
	require.NoError(t, err)
	want := strings.Join([]string{
		"a    10",
		"b    20",
		"z    30",
		"dtype: int64",
	}, "\n")
	assert.Equal(t, want, render(t, s))
}

func TestSeriesTruncated(t *testing.T) {
	t.Parallel()
	s := dfrepr.NewSeries(rangeInt64s(t, 10))
	limits := dfrepr.DefaultLimits()
	limits.MaxRows = 6
	limits.MinRows = 4
	out, err := s.Render(limits)
	require.NoError(t, err)
	want := strings.Join([]string{
		"0        0",
		"1        1",
		"...    ...",
		"8        8",
		"9        9",
		"Length: 10, dtype: int64",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestSeriesCategorical(t *testing.T) {
	t.Parallel()
	dict := float64s(t, []float64{1, 2, 10, nan64()}, nil)
	s := dfrepr.NewSeries(categories(t, dict, []int{0, 1, 3, 2, 3, -1}, false))
	want := strings.Join([]string{
		"0     1.0",
		"1     2.0",
		"2     NaN",
		"3    10.0",
		"4     NaN",
		"5    <NA>",
		"dtype: category",
		"Categories (4, float64): [1.0, 2.0, 10.0, NaN]",
	}, "\n")
	assert.Equal(t, want, render(t, s))
}

func TestSeriesBool(t *testing.T) {
	t.Parallel()
	s := dfrepr.NewSeries(bools(t, []bool{true, false}, []bool{true, true}))
	want := strings.Join([]string{
		"0     True",
		"1    False",
		"dtype: bool",
	}, "\n")
	assert.Equal(t, want, render(t, s))
}

func TestSeriesStruct(t *testing.T) {
	t.Parallel()
	st := arrow.StructOf(arrow.Field{Name: "sa", Type: arrow.PrimitiveTypes.Int64, Nullable: true})
	b := array.NewStructBuilder(memory.DefaultAllocator, st)
	defer b.Release()
	fb := b.FieldBuilder(0).(*array.Int64Builder)
	b.Append(true)
	fb.Append(2056831253)
	b.Append(true)
	fb.AppendNull()
	s := dfrepr.NewSeries(b.NewArray())
	want := strings.Join([]string{
		"0    {'sa': 2056831253}",
		"1          {'sa': None}",
		"dtype: struct",
	}, "\n")
	assert.Equal(t, want, render(t, s))
}

func TestSeriesMultiIndexSparsifiedLabels(t *testing.T) {
	t.Parallel()
	mi, err := dfrepr.NewMultiIndex([]arrow.Array{
		int64s(t, []int64{0, 0, 1, 1}, nil),
		int64s(t, []int64{0, 1, 0, 1}, nil),
	}, []string{"a", "b"})
	require.NoError(t, err)
	base := dfrepr.NewSeries(int64s(t, []int64{5, 6, 7, 8}, nil))
	s, err := base.WithIndex(mi)
	require.NoError(t, err)
	want := strings.Join([]string{
		"0 0    5",
		"  1    6",
		"1 0    7",
		"  1    8",
		"dtype: int64",
	}, "\n")
	assert.Equal(t, want, render(t, s))
}

func TestSeriesLengthMismatch(t *testing.T) {
	t.Parallel()
	base := dfrepr.NewSeries(int64s(t, []int64{1, 2, 3}, nil))
	_, err := base.WithIndex(dfrepr.NewRangeIndex(5))
	assert.ErrorIs(t, err, dfrepr.ErrLengthMismatch)
}

func TestSeriesInvalidLimits(t *testing.T) {
	t.Parallel()
	s := dfrepr.NewSeries(rangeInt64s(t, 3))
	_, err := s.Render(dfrepr.Limits{MaxRows: -1})
	assert.ErrorIs(t, err, dfrepr.ErrInvalidLimits)
}

func nan64() float64 {
	var z float64
	return z / z
}
