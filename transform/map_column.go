package transform

import (
	"github.com/go-munge/munge"
	"github.com/go-munge/munge/errors"
)

// MapOperation transforms a single cell value.
type MapOperation func(munge.Value) munge.Value

// MapColumn applies fn to every value of the named column, in place, and
// returns the same Dataset. The column must be present on every row; if any
// row lacks it, a MissingColumnError is returned before any row is modified.
func MapColumn(d munge.Dataset, col string, fn MapOperation) (munge.Dataset, error) {
	for _, row := range d {
		if _, ok := row[col]; !ok {
			return nil, errors.MissingColumnError{Col: col}
		}
	}
	for _, row := range d {
		row[col] = fn(row[col])
	}
	return d, nil
}
