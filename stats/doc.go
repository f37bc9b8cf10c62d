// Package stats provides the numeric column statistics backing imputation
// and group-by aggregation: sums, means, maxima, the upper-middle median and
// the first-seen mode.
package stats
