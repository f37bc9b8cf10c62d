// Package transform contains the tabular manipulation primitives of Munge:
// column mapping, missing-value imputation, row/column selection, group-by
// aggregation, sampling and pivoting. Every transform consumes and produces
// the same munge.Dataset representation, so transforms compose freely.
package transform
