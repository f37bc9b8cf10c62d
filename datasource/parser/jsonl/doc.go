// Package jsonl parses JSON Lines data into Datasets. This parser uses
// https://github.com/tidwall/gjson to process data, and supports explicit
// column names formatted as gjson paths.
package jsonl
