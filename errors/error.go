package errors

import (
	"fmt"
)

// MissingColumnError occurs when a column is absent from a Row which is
// required to carry it, such as a MapColumn target or a GroupBy key
type MissingColumnError struct{ Col string }

// Error returns a textual representation of this MissingColumnError
func (e MissingColumnError) Error() string {
	return fmt.Sprintf("Column %s does not exist in row", e.Col)
}

// EmptyDatasetError occurs when an operation needs at least one row to
// derive a schema and none were given
type EmptyDatasetError struct{}

// Error returns a textual representation of this EmptyDatasetError
func (e EmptyDatasetError) Error() string {
	return "Dataset contains no rows"
}

// TypeAggregationError occurs when incompatible value types are combined
// within a single column's aggregate or imputation computation
type TypeAggregationError struct{ Col string }

// Error returns a textual representation of this TypeAggregationError
func (e TypeAggregationError) Error() string {
	return fmt.Sprintf("Column %s mixes incompatible value types", e.Col)
}

// UnsupportedStrategyError occurs when an unknown cleaning strategy is given
type UnsupportedStrategyError struct{ Strategy string }

// Error returns a textual representation of this UnsupportedStrategyError
func (e UnsupportedStrategyError) Error() string {
	return fmt.Sprintf("Unknown cleaning strategy %s", e.Strategy)
}

// UnsupportedAggregationError occurs when an unknown aggregation kind is given
type UnsupportedAggregationError struct{ Kind string }

// Error returns a textual representation of this UnsupportedAggregationError
func (e UnsupportedAggregationError) Error() string {
	return fmt.Sprintf("Unknown aggregation kind %s", e.Kind)
}
