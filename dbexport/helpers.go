package dbexport

// ScanRow scans the current row of rows into a Row sharing the cols slice.
func ScanRow(rows Rows, cols []string) (Row, error) {
	columns := make([]interface{}, len(cols))
	columnPointers := make([]interface{}, len(cols))
	for i := range columns {
		columnPointers[i] = &columns[i]
	}
	if err := rows.Scan(columnPointers...); err != nil {
		return Row{}, err
	}
	vals := make([]interface{}, len(cols))
	for i := range cols {
		v := *columnPointers[i].(*interface{})
		// drivers may reuse the backing array of []byte values after Next
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		vals[i] = v
	}
	return Row{Columns: cols, Values: vals}, nil
}

// ScanRows drains rows into a slice of Row, closing it when done.
// Driver errors are returned unwrapped.
func ScanRows(rows Rows) ([]Row, error) {
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []Row
	for rows.Next() {
		row, err := ScanRow(rows, cols)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
