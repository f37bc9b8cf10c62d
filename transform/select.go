package transform

import (
	"github.com/go-munge/munge"
)

// Select projects a subset of columns and/or rows into a new Dataset. Rows
// are kept when rows is nil or contains their index; kept rows contain only
// the requested columns which exist on them. Passing nil columns yields
// empty output rows, not copies - callers selecting rows alone must still
// name the columns they want. Output order matches input row order.
func Select(d munge.Dataset, columns []string, rows []int) munge.Dataset {
	var keep map[int]struct{}
	if rows != nil {
		keep = make(map[int]struct{}, len(rows))
		for _, i := range rows {
			keep[i] = struct{}{}
		}
	}

	selected := make(munge.Dataset, 0, len(d))
	for i, row := range d {
		if keep != nil {
			if _, ok := keep[i]; !ok {
				continue
			}
		}
		selectedRow := make(munge.Row, len(columns))
		for _, col := range columns {
			if v, present := row[col]; present {
				selectedRow[col] = v
			}
		}
		selected = append(selected, selectedRow)
	}
	return selected
}
