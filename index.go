package dfrepr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/mattn/go-runewidth"
)

// AxisIndex is the row-label axis of a Series or DataFrame: a RangeIndex,
// a flat arrow-backed Index, or a MultiIndex. The interface is closed; the
// rendering rule tables are exhaustive over these three.
type AxisIndex interface {
	Len() int

	levelNames() []string
	rowLabels(keep []int) ([][]string, error)
}

// --- RangeIndex ---

// RangeIndex is the default positional index 0..n-1. Labels are derived,
// never materialized, so truncation cost stays proportional to kept rows.
type RangeIndex struct {
	n int
}

// NewRangeIndex returns the positional index of length n.
func NewRangeIndex(n int) *RangeIndex { return &RangeIndex{n: n} }

func (ix *RangeIndex) Len() int { return ix.n }

func (ix *RangeIndex) levelNames() []string { return []string{""} }

func (ix *RangeIndex) rowLabels(keep []int) ([][]string, error) {
	out := make([]string, len(keep))
	for k, i := range keep {
		out[k] = strconv.Itoa(i)
	}
	return [][]string{out}, nil
}

// String renders the index repr.
func (ix *RangeIndex) String() string {
	return fmt.Sprintf("RangeIndex(start=0, stop=%d, step=1)", ix.n)
}

// --- Index ---

// Index is a flat axis of labels backed by a single typed column.
type Index struct {
	name   string
	values arrow.Array
}

// NewIndex wraps an Arrow array as a flat index. The array is treated as an
// immutable snapshot; the caller keeps it alive for the index's lifetime.
func NewIndex(values arrow.Array) *Index {
	return &Index{values: values}
}

// Named returns a copy of the index carrying a display name.
func (ix *Index) Named(name string) *Index {
	return &Index{name: name, values: ix.values}
}

func (ix *Index) Len() int { return ix.values.Len() }

// Name returns the index display name, empty when unnamed.
func (ix *Index) Name() string { return ix.name }

func (ix *Index) levelNames() []string { return []string{ix.name} }

func (ix *Index) rowLabels(keep []int) ([][]string, error) {
	out := make([]string, len(keep))
	for k, i := range keep {
		s, err := formatElem(ix.values, i, ctxCell)
		if err != nil {
			return nil, err
		}
		out[k] = s
	}
	return [][]string{out}, nil
}

// Render produces the standalone index repr, e.g.
//
//	Int64Index([1, 2, 3, <NA>], dtype='int64')
//
// Object-dtype indexes keep the legacy numpy-style form with bare None
// tokens and space separators; every other dtype shows nulls as <NA>.
func (ix *Index) Render(limits Limits) (string, error) {
	if err := limits.Validate(); err != nil {
		return "", err
	}
	dt := ix.values.DataType()
	cls, err := indexClassName(dt)
	if err != nil {
		return "", err
	}
	plan := truncate(ix.Len(), limits.MaxSeqItems, 0)
	toks, err := ix.reprTokens(plan)
	if err != nil {
		return "", err
	}

	trailer, err := ix.reprTrailer(plan)
	if err != nil {
		return "", err
	}
	if dt.ID() == arrow.STRING {
		return wrapSpaceForm(cls, toks, trailer, limits.effectiveWidth()), nil
	}
	// The summary is laid out as if every token carried quotes; all comma-form
	// dtypes except a null-free timedelta shed them after layout.
	pad := 2
	if ix.quotedTokens() {
		pad = 0
	}
	return wrapCommaForm(cls, toks, trailer, pad, limits.effectiveWidth()), nil
}

func (ix *Index) String() string {
	s, err := ix.Render(DefaultLimits())
	if err != nil {
		return "Index(<" + err.Error() + ">)"
	}
	return s
}

// quotedTokens reports whether repr tokens keep their quotes: timedelta
// values are quoted, but only when the index holds no nulls, and the <NA>
// token itself is never quoted.
func (ix *Index) quotedTokens() bool {
	return ix.values.DataType().ID() == arrow.DURATION && ix.values.NullN() == 0
}

func (ix *Index) reprTokens(plan truncationPlan) ([]string, error) {
	quoteDur := ix.quotedTokens()

	format := func(i int) (string, error) {
		s, err := formatElem(ix.values, i, ctxIndexRepr)
		if err != nil {
			return "", err
		}
		if quoteDur {
			s = "'" + s + "'"
		}
		return s, nil
	}

	toks := make([]string, 0, len(plan.head)+len(plan.tail)+1)
	for _, i := range plan.head {
		s, err := format(i)
		if err != nil {
			return nil, err
		}
		toks = append(toks, s)
	}
	if plan.truncated {
		toks = append(toks, "...")
	}
	for _, i := range plan.tail {
		s, err := format(i)
		if err != nil {
			return nil, err
		}
		toks = append(toks, s)
	}
	return toks, nil
}

func (ix *Index) reprTrailer(plan truncationPlan) (string, error) {
	dt := ix.values.DataType()
	name, err := dtypeName(dt)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if cat, ok := dt.(*arrow.DictionaryType); ok {
		dict := ix.values.(*array.Dictionary).Dictionary()
		list, err := categoryList(dict)
		if err != nil {
			return "", err
		}
		ordered := "False"
		if cat.Ordered {
			ordered = "True"
		}
		fmt.Fprintf(&sb, "categories=[%s], ordered=%s, ", list, ordered)
	}
	fmt.Fprintf(&sb, "dtype='%s'", name)
	if ix.name != "" {
		fmt.Fprintf(&sb, ", name='%s'", ix.name)
	}
	if plan.truncated {
		fmt.Fprintf(&sb, ", length=%d", ix.Len())
	}
	return sb.String(), nil
}

// categoryList formats a dictionary's category values, e.g.
// "1.0, 2.0, 10.0, NaN". A NaN category is a value, not a null.
func categoryList(dict arrow.Array) (string, error) {
	parts := make([]string, dict.Len())
	for i := range parts {
		s, err := formatElem(dict, i, ctxIndexRepr)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

// wrapCommaForm lays out "Cls([t1, t2, ...], trailer)" the way pandas lays
// out an object-index summary. Tokens fill greedily onto lines that continue
// under a seven-space indent; a fresh line starts with fill width one for its
// break, a middle token costs its width plus comma, and the last token
// reserves two more columns for the closing bracket. pad widens each token's
// fill cost without changing its text, so reprs whose quotes are stripped
// after layout keep the line breaks the quoted text had. An ellipsis token
// always takes a line of its own. The trailer shares the data line whenever
// the summary is a single line, however long the trailer itself is;
// otherwise it drops to a six-space-indented line.
func wrapCommaForm(cls string, toks []string, trailer string, pad, width int) string {
	if len(toks) == 0 {
		return cls + "([], " + trailer + ")"
	}

	const indent = "       "
	var lines []string
	cur, trim := "", 1
	flush := func() {
		lines = append(lines, indent+strings.TrimRight(cur, " "))
		cur, trim = "", 1
	}
	for i, t := range toks {
		if t == "..." {
			if cur != "" {
				flush()
			}
			lines = append(lines, indent+"...")
			continue
		}
		w := runewidth.StringWidth(t) + pad
		wordTrim, limit := w+1, width
		if i == len(toks)-1 {
			wordTrim, limit = w, width-2
		}
		if cur != "" && trim+wordTrim >= limit {
			flush()
		}
		base := 1 + len(indent)
		if cur != "" {
			base = trim + 1
		}
		cur += t
		if i < len(toks)-1 {
			cur += ", "
		}
		trim = base + wordTrim
	}
	if cur != "" {
		flush()
	}

	lines[0] = cls + "([" + strings.TrimPrefix(lines[0], indent)
	lines[len(lines)-1] += "],"
	if len(lines) == 1 {
		return strings.TrimSuffix(lines[0], ",") + ", " + trailer + ")"
	}
	lines = append(lines, strings.Repeat(" ", 6)+trailer+")")
	return strings.Join(lines, "\n")
}

// wrapSpaceForm lays out the legacy object-index repr: space-separated
// tokens, single-space continuation indent, trailer attached to the closing
// bracket.
func wrapSpaceForm(cls string, toks []string, trailer string, width int) string {
	prefix := cls + "(["
	suffix := "], " + trailer + ")"
	single := prefix + strings.Join(toks, " ") + suffix
	if runewidth.StringWidth(single) <= width {
		return single
	}
	var lines []string
	cur := prefix
	curLen := runewidth.StringWidth(cur)
	started := false
	for _, t := range toks {
		tw := runewidth.StringWidth(t)
		if started && curLen+1+tw > width {
			lines = append(lines, cur)
			cur = " "
			curLen = 1
			started = false
		}
		if started {
			cur += " " + t
			curLen += 1 + tw
		} else {
			cur += t
			curLen += tw
			started = true
		}
	}
	lines = append(lines, cur+suffix)
	return strings.Join(lines, "\n")
}
