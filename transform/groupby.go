package transform

import (
	"sort"

	"github.com/go-munge/munge"
	"github.com/go-munge/munge/errors"
	"github.com/go-munge/munge/stats"
)

// Aggregation selects how GroupBy reduces a column's collected values.
type Aggregation string

const (
	// AggregationSum emits the arithmetic sum of the collected values
	AggregationSum Aggregation = "sum"
	// AggregationMean emits the arithmetic mean of the collected values,
	// or the null marker when nothing was collected
	AggregationMean Aggregation = "mean"
	// AggregationMax emits the maximum of the collected values by natural ordering
	AggregationMax Aggregation = "max"
)

// aggregateOperation reduces a column's accumulated values to one cell.
type aggregateOperation func(col string, values []munge.Value) (munge.Value, error)

// aggregators resolves aggregation kinds to their handlers.
var aggregators = map[Aggregation]aggregateOperation{
	AggregationSum:  aggregateSum,
	AggregationMean: aggregateMean,
	AggregationMax:  aggregateMax,
}

// group accumulates one grouping key's values, per aggregated column.
type group struct {
	key munge.Value
	acc map[string][]munge.Value
}

// GroupBy groups rows by the value of groupCol and reduces each configured
// column with its Aggregation, producing one output row per distinct
// grouping key in first-seen key order, shaped as {groupCol: key, cols...}.
// Scalar cells contribute one value and []Value cells contribute their
// elements; null entries are dropped before accumulation. A column which was
// present on no row of a group is omitted from that group's output row, so
// output rows need not share a schema. Input rows are never modified.
//
// GroupBy fails with an UnsupportedAggregationError before any work if an
// unknown kind is configured, a MissingColumnError if any row lacks
// groupCol, and a TypeAggregationError if one column accumulates
// incompatible value types.
func GroupBy(d munge.Dataset, groupCol string, aggs map[string]Aggregation) (munge.Dataset, error) {
	// aggregated columns in a stable order, validating kinds up front
	cols := make([]string, 0, len(aggs))
	for col, kind := range aggs {
		if _, ok := aggregators[kind]; !ok {
			return nil, errors.UnsupportedAggregationError{Kind: string(kind)}
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	// collection phase: accumulate values per (group, column), keyed by a
	// digest of the grouping value and kept in first-seen order
	groups := make([]*group, 0)
	index := make(map[uint64]*group)
	for _, row := range d {
		key, present := row[groupCol]
		if !present {
			return nil, errors.MissingColumnError{Col: groupCol}
		}
		digest := keyDigest(key)
		g, ok := index[digest]
		if !ok {
			g = &group{key: key, acc: make(map[string][]munge.Value)}
			index[digest] = g
			groups = append(groups, g)
		}
		for _, col := range cols {
			value, present := row[col]
			if !present {
				continue
			}
			// a present column registers its accumulator even when every
			// value is filtered out below
			acc := g.acc[col]
			if elems, ok := value.([]munge.Value); ok {
				for _, e := range elems {
					if e != nil {
						acc = append(acc, e)
					}
				}
			} else if value != nil {
				acc = append(acc, value)
			}
			g.acc[col] = acc
		}
	}

	// aggregation phase
	aggregated := make(munge.Dataset, 0, len(groups))
	for _, g := range groups {
		row := munge.Row{groupCol: g.key}
		for _, col := range cols {
			values, present := g.acc[col]
			if !present {
				continue
			}
			result, err := aggregators[aggs[col]](col, values)
			if err != nil {
				return nil, err
			}
			row[col] = result
		}
		aggregated = append(aggregated, row)
	}
	return aggregated, nil
}

func aggregateSum(col string, values []munge.Value) (munge.Value, error) {
	nums, strs, err := splitValues(col, values)
	if err != nil {
		return nil, err
	}
	if strs != nil {
		// summing strings is concatenation, not aggregation
		return nil, errors.TypeAggregationError{Col: col}
	}
	return stats.Sum(nums), nil
}

func aggregateMean(col string, values []munge.Value) (munge.Value, error) {
	nums, strs, err := splitValues(col, values)
	if err != nil {
		return nil, err
	}
	if strs != nil {
		return nil, errors.TypeAggregationError{Col: col}
	}
	mean, ok := stats.Mean(nums)
	if !ok {
		return nil, nil
	}
	return mean, nil
}

func aggregateMax(col string, values []munge.Value) (munge.Value, error) {
	nums, strs, err := splitValues(col, values)
	if err != nil {
		return nil, err
	}
	if strs != nil {
		max := strs[0]
		for _, s := range strs[1:] {
			if s > max {
				max = s
			}
		}
		return max, nil
	}
	max, ok := stats.Max(nums)
	if !ok {
		// an accumulator drained to nothing has no maximum
		return nil, nil
	}
	return max, nil
}
