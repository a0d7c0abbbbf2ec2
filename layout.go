package asciitable

// resolvedColumn is a Column after defaults have been applied.
type resolvedColumn struct {
	header   Text
	align    Alignment
	maxWidth int
}

// layout is everything the frame needs to draw a valid table.
type layout struct {
	columns []resolvedColumn
	rows    [][]Text
	widths  []int
	header  bool
}

// framePadding returns the characters taken by borders and separators for
// n columns: "│ " and " │" on the outside plus " │ " between columns.
func framePadding(n int) int {
	return 3*(n-1) + 4
}

func colCount(rows [][]Text) int {
	n := 0
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func valid(rows [][]Text, cfg Config) bool {
	if len(rows) == 0 {
		return false
	}
	n := colCount(rows)
	return n > 0 && cfg.MaxWidth >= framePadding(n)
}

// resolve lays out rows under cfg. It reports false for degenerate input.
func resolve(rows [][]Text, cfg Config) (*layout, bool) {
	if !valid(rows, cfg) {
		return nil, false
	}
	n := colCount(rows)
	l := &layout{
		columns: resolveColumns(cfg, n),
		rows:    squareRows(rows, n),
	}
	for _, c := range l.columns {
		if c.header.Len() > 0 {
			l.header = true
			break
		}
	}
	l.widths = shrink(computeWidths(l.columns, l.rows), cfg.MaxWidth)
	return l, true
}

// resolveColumns turns the sparse column map into one entry per column.
func resolveColumns(cfg Config, n int) []resolvedColumn {
	def := cfg.DefaultAlign
	if def == AlignDefault {
		def = AlignLeft
	}
	cols := make([]resolvedColumn, n)
	for i := range cols {
		c := cfg.Columns[i]
		cols[i] = resolvedColumn{
			header:   ParseText(c.Header),
			align:    c.Align,
			maxWidth: c.MaxWidth,
		}
		if cols[i].align == AlignDefault {
			cols[i].align = def
		}
	}
	return cols
}

// squareRows pads short rows with empty cells. The input is not modified.
func squareRows(rows [][]Text, n int) [][]Text {
	out := make([][]Text, len(rows))
	for i, row := range rows {
		out[i] = make([]Text, n)
		copy(out[i], row)
	}
	return out
}

func computeWidths(cols []resolvedColumn, rows [][]Text) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = c.header.Len()
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := cell.Len(); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, c := range cols {
		if c.maxWidth > 0 && widths[i] > c.maxWidth {
			widths[i] = c.maxWidth
		}
	}
	return widths
}

// shrink narrows the widest column, rightmost first, one character at a
// time until the table fits maxWidth or every column is empty.
func shrink(widths []int, maxWidth int) []int {
	pad := framePadding(len(widths))
	for {
		sum, widest, idx := 0, 0, -1
		for i, w := range widths {
			sum += w
			if w >= widest {
				widest, idx = w, i
			}
		}
		if sum+pad <= maxWidth || widest == 0 {
			return widths
		}
		widths[idx]--
	}
}
