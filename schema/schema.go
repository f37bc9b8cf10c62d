// Package schema derives and carries the ordered column list used to drive
// per-row processing uniformly across a Dataset.
package schema

import (
	"sort"

	"github.com/go-munge/munge"
	"github.com/go-munge/munge/errors"
)

// Schema is an ordered list of column names. Transforms which need a fixed
// column set snapshot one Schema up front and consult it for every row,
// rather than re-deriving columns per row.
type Schema struct {
	cols []string
}

// FromColumns creates a Schema from an explicit, ordered column list.
func FromColumns(cols []string) Schema {
	copied := make([]string, len(cols))
	copy(copied, cols)
	return Schema{cols: copied}
}

// Infer snapshots a Schema from the first row of a Dataset. Column order is
// lexicographic, since Go map iteration order is not stable. Returns an
// EmptyDatasetError if the Dataset has no rows.
func Infer(d munge.Dataset) (Schema, error) {
	if len(d) == 0 {
		return Schema{}, errors.EmptyDatasetError{}
	}
	cols := make([]string, 0, len(d[0]))
	for col := range d[0] {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return Schema{cols: cols}, nil
}

// Columns returns the column names of this Schema, in order. The returned
// slice must not be modified.
func (s Schema) Columns() []string {
	return s.cols
}

// NumColumns returns the number of columns in this Schema.
func (s Schema) NumColumns() int {
	return len(s.cols)
}

// HasColumn returns true iff this Schema contains a column with the given name.
func (s Schema) HasColumn(col string) bool {
	for _, c := range s.cols {
		if c == col {
			return true
		}
	}
	return false
}

// Equals returns true iff this and another Schema contain the same columns
// in the same order.
func (s Schema) Equals(other Schema) bool {
	if len(s.cols) != len(other.cols) {
		return false
	}
	for i, c := range s.cols {
		if other.cols[i] != c {
			return false
		}
	}
	return true
}
