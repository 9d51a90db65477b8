package dfrepr

// Grid is the rendered cell model shared by every output format: the same
// truncation and the same cell text regardless of the target syntax. Rows
// and labels already carry the ellipsis markers when truncated.
type Grid struct {
	IndexNames    []string   `json:"index_names" yaml:"index_names"`
	ColumnLabels  []string   `json:"columns" yaml:"columns"`
	IndexLabels   [][]string `json:"index" yaml:"index"`
	Rows          [][]string `json:"rows" yaml:"rows"`
	NumRows       int        `json:"num_rows" yaml:"num_rows"`
	NumCols       int        `json:"num_cols" yaml:"num_cols"`
	RowsTruncated bool       `json:"rows_truncated" yaml:"rows_truncated"`
	ColsTruncated bool       `json:"cols_truncated" yaml:"cols_truncated"`
}

// BuildGrid applies the display limits to df and formats every surviving
// cell. IndexLabels is row-major: one label tuple per displayed row, with
// ".." tuples marking the elided middle. An elided column keeps a single
// "..." label with "..." cells.
func BuildGrid(df *DataFrame, limits Limits) (*Grid, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	rowPlan := truncate(df.NumRows(), limits.MaxRows, limits.MinRows)
	colPlan := truncate(df.NumCols(), limits.MaxColumns, 0)
	keepRows := rowPlan.kept()
	keepCols := colPlan.kept()

	labelCols, err := df.index.rowLabels(keepRows)
	if err != nil {
		return nil, err
	}

	cells := make([][]string, len(keepCols))
	names := make([]string, len(keepCols))
	for ci, c := range keepCols {
		col := df.columns[c]
		names[ci] = col.Name
		cells[ci] = make([]string, len(keepRows))
		for ri, r := range keepRows {
			s, err := formatElem(col.Values, r, ctxCell)
			if err != nil {
				return nil, err
			}
			cells[ci][ri] = s
		}
	}

	if colPlan.truncated {
		at := len(colPlan.head)
		ell := make([]string, len(keepRows))
		for i := range ell {
			ell[i] = "..."
		}
		names = insertAt(names, at, "...")
		cells = append(cells[:at], append([][]string{ell}, cells[at:]...)...)
	}
	if rowPlan.truncated {
		at := len(rowPlan.head)
		for lv := range labelCols {
			labelCols[lv] = insertAt(labelCols[lv], at, "..")
		}
		for ci := range cells {
			cells[ci] = insertAt(cells[ci], at, "...")
		}
	}

	nDisplayRows := len(keepRows)
	if rowPlan.truncated {
		nDisplayRows++
	}
	rows := make([][]string, nDisplayRows)
	indexLabels := make([][]string, nDisplayRows)
	for ri := 0; ri < nDisplayRows; ri++ {
		rows[ri] = make([]string, len(cells))
		for ci := range cells {
			rows[ri][ci] = cells[ci][ri]
		}
		indexLabels[ri] = make([]string, len(labelCols))
		for lv := range labelCols {
			indexLabels[ri][lv] = labelCols[lv][ri]
		}
	}

	return &Grid{
		IndexNames:    df.index.levelNames(),
		ColumnLabels:  names,
		IndexLabels:   indexLabels,
		Rows:          rows,
		NumRows:       df.NumRows(),
		NumCols:       df.NumCols(),
		RowsTruncated: rowPlan.truncated,
		ColsTruncated: colPlan.truncated,
	}, nil
}
