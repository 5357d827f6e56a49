package model

// PackRows packs per-field columns into row-major records, zipping one
// nesting level at a time. level is the nesting depth of the columns; at
// level 0 the data is returned unchanged.
//
// Flat columns pack into flat rows:
//
//	PackRows([a, b, c], 1) // one row per index: (a[i], b[i], c[i])
//
// and nested columns pack into nested rows, one extra zip per level.
func PackRows(data interface{}, level int) interface{} {
	if level == 0 {
		return data
	}
	cols, ok := data.([]interface{})
	if !ok {
		return data
	}
	rows := zipValues(cols)
	out := make([]interface{}, len(rows))
	for i, row := range rows {
		out[i] = PackRows(row, level-1)
	}
	return out
}

// UnpackRows is the inverse of PackRows: it splits row-major records back
// into per-field columns. For any rectangular input of depth >= level,
// UnpackRows(PackRows(x, level), level) == x.
func UnpackRows(data interface{}, level int) interface{} {
	if level == 0 {
		return data
	}
	rows, ok := data.([]interface{})
	if !ok {
		return data
	}
	unpacked := make([]interface{}, len(rows))
	for i, row := range rows {
		unpacked[i] = UnpackRows(row, level-1)
	}
	return zipValues(unpacked)
}

// zipValues transposes a slice of slices, stopping at the shortest one.
func zipValues(cols []interface{}) []interface{} {
	width := -1
	for _, c := range cols {
		xs, ok := c.([]interface{})
		if !ok {
			return []interface{}{}
		}
		if width < 0 || len(xs) < width {
			width = len(xs)
		}
	}
	if width <= 0 {
		return []interface{}{}
	}
	out := make([]interface{}, width)
	for i := 0; i < width; i++ {
		row := make([]interface{}, len(cols))
		for j, c := range cols {
			row[j] = c.([]interface{})[i]
		}
		out[i] = row
	}
	return out
}
