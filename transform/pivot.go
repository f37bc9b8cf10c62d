package transform

import (
	"github.com/go-munge/munge"
	"github.com/go-munge/munge/errors"
)

// Pivot reshapes d into one row per distinct value of pivotCol, shaped as
// {pivotCol: key, valueCol: value}, in first-seen key order. When several
// rows share a pivot key, the value from the LAST such row wins; no
// aggregation is performed. Both columns must be present on every row, or a
// MissingColumnError is returned.
func Pivot(d munge.Dataset, pivotCol string, valueCol string) (munge.Dataset, error) {
	type entry struct {
		key   munge.Value
		value munge.Value
	}
	entries := make([]*entry, 0)
	index := make(map[uint64]*entry)

	for _, row := range d {
		key, present := row[pivotCol]
		if !present {
			return nil, errors.MissingColumnError{Col: pivotCol}
		}
		value, present := row[valueCol]
		if !present {
			return nil, errors.MissingColumnError{Col: valueCol}
		}
		digest := keyDigest(key)
		if e, ok := index[digest]; ok {
			e.value = value
			continue
		}
		e := &entry{key: key, value: value}
		index[digest] = e
		entries = append(entries, e)
	}

	pivoted := make(munge.Dataset, 0, len(entries))
	for _, e := range entries {
		pivoted = append(pivoted, munge.Row{pivotCol: e.key, valueCol: e.value})
	}
	return pivoted, nil
}
