package transform

import (
	"sort"

	"github.com/go-munge/munge"
	"github.com/go-munge/munge/errors"
	"github.com/go-munge/munge/schema"
	"github.com/go-munge/munge/stats"
)

// Strategy selects how Clean handles missing values.
type Strategy string

const (
	// StrategyMean imputes the arithmetic mean of the column's non-missing values
	StrategyMean Strategy = "mean"
	// StrategyMedian imputes the upper-middle element of the column's sorted non-missing values
	StrategyMedian Strategy = "median"
	// StrategyMode imputes the most frequent of the column's non-missing values
	StrategyMode Strategy = "mode"
	// StrategyRemove drops any row containing a missing value
	StrategyRemove Strategy = "remove"
)

// imputeOperation computes a replacement cell from a column's non-missing values.
type imputeOperation func(col string, values []munge.Value) (munge.Value, error)

// imputers resolves imputing strategies to their handlers. StrategyRemove is
// not an imputer and is dispatched separately.
var imputers = map[Strategy]imputeOperation{
	StrategyMean:   imputeMean,
	StrategyMedian: imputeMedian,
	StrategyMode:   imputeMode,
}

// Clean builds a new Dataset with missing values handled per the given
// Strategy. The column set is snapshotted once from the first row and used
// for every row: columns absent from a row are dropped from its output row,
// missing cells (nil or "") are imputed from the column's non-missing values
// across the whole Dataset, and non-missing cells are copied unchanged.
// StrategyRemove instead drops any row with a missing cell. Surviving rows
// keep their input order. The input Dataset is not modified.
//
// Clean fails with an UnsupportedStrategyError for unknown strategies and an
// EmptyDatasetError when there is no first row to derive a schema from.
func Clean(d munge.Dataset, strategy Strategy) (munge.Dataset, error) {
	if _, ok := imputers[strategy]; !ok && strategy != StrategyRemove {
		return nil, errors.UnsupportedStrategyError{Strategy: string(strategy)}
	}
	sch, err := schema.Infer(d)
	if err != nil {
		return nil, err
	}

	// imputed values are computed lazily, once per column
	imputed := make(map[string]munge.Value)
	imputedValue := func(col string) (munge.Value, error) {
		if v, ok := imputed[col]; ok {
			return v, nil
		}
		v, err := imputers[strategy](col, collectColumn(d, col))
		if err != nil {
			return nil, err
		}
		imputed[col] = v
		return v, nil
	}

	cleaned := make(munge.Dataset, 0, len(d))
	for _, row := range d {
		cleanedRow := make(munge.Row, sch.NumColumns())
		removed := false
		for _, col := range sch.Columns() {
			value, present := row[col]
			if !present {
				continue
			}
			if munge.IsMissing(value) {
				if strategy == StrategyRemove {
					removed = true
					break
				}
				replacement, err := imputedValue(col)
				if err != nil {
					return nil, err
				}
				cleanedRow[col] = replacement
				continue
			}
			cleanedRow[col] = value
		}
		if !removed {
			cleaned = append(cleaned, cleanedRow)
		}
	}
	return cleaned, nil
}

// collectColumn gathers the non-missing values of a column across the whole
// Dataset, in row order, skipping rows where the column is absent.
func collectColumn(d munge.Dataset, col string) []munge.Value {
	var values []munge.Value
	for _, row := range d {
		if v, present := row[col]; present && !munge.IsMissing(v) {
			values = append(values, v)
		}
	}
	return values
}

func imputeMean(col string, values []munge.Value) (munge.Value, error) {
	if len(values) == 0 {
		return nil, nil
	}
	nums, strs, err := splitValues(col, values)
	if err != nil {
		return nil, err
	}
	if strs != nil {
		// no arithmetic mean exists for string data
		return nil, errors.TypeAggregationError{Col: col}
	}
	mean, _ := stats.Mean(nums)
	return mean, nil
}

func imputeMedian(col string, values []munge.Value) (munge.Value, error) {
	if len(values) == 0 {
		return nil, nil
	}
	nums, strs, err := splitValues(col, values)
	if err != nil {
		return nil, err
	}
	if strs != nil {
		sort.Strings(strs)
		return strs[len(strs)/2], nil
	}
	median, _ := stats.Median(nums)
	return median, nil
}

// imputeMode counts occurrences with numeric values normalized to float64,
// so an int 4 and a float64 4.0 count together. Ties break to the value
// whose maximal count is reached first in dataset scan order.
func imputeMode(col string, values []munge.Value) (munge.Value, error) {
	if len(values) == 0 {
		return nil, nil
	}
	counts := make(map[munge.Value]int, len(values))
	reps := make(map[munge.Value]munge.Value, len(values))
	var best munge.Value
	bestCount := 0
	for _, v := range values {
		key := v
		if f, ok := asFloat(v); ok {
			key = f
		} else if _, ok := v.(string); !ok {
			if _, ok := v.(bool); !ok {
				return nil, errors.TypeAggregationError{Col: col}
			}
		}
		if _, seen := reps[key]; !seen {
			reps[key] = v
		}
		counts[key]++
		if counts[key] > bestCount {
			best = reps[key]
			bestCount = counts[key]
		}
	}
	return best, nil
}
