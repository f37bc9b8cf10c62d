// Package memory builds Datasets from in-memory row maps, primarily for
// tests and for callers who already hold their records in Go maps.
package memory

import (
	"github.com/go-munge/munge"
)

// CreateDataset builds a Dataset from a slice of row maps. Rows are copied,
// so later changes to data do not alias the Dataset; cell values are shared.
func CreateDataset(data []map[string]interface{}) munge.Dataset {
	dataset := make(munge.Dataset, len(data))
	for i, record := range data {
		row := make(munge.Row, len(record))
		for col, v := range record {
			row[col] = v
		}
		dataset[i] = row
	}
	return dataset
}
