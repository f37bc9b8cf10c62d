// Package dsv parses delimiter-separated values into Datasets. Column order
// comes from the header row (or an explicit column list), giving downstream
// transforms a stable schema order.
package dsv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/go-munge/munge"
	"github.com/go-munge/munge/schema"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	Delimiter   rune     // The delimiter separating columns. Defaults to ,
	Comment     rune     // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	HeaderLines int      // The number of lines to ignore from the beginning of the input. Defaults to 0.
	Columns     []string // Explicit column names. When nil, the first non-ignored record is the header.
	NilValue    string   // A special string which represents nil values in the data. Defaults to "" (the empty string).
	InferTypes  bool     // When true, cells parseable as integers or floats become numeric values instead of strings.
}

// Parser produces Datasets from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse reads DSV data to produce a Dataset and the Schema fixed by its
// header. Cells equal to NilValue (or empty) become the null marker.
func (p *Parser) Parse(r io.Reader) (munge.Dataset, schema.Schema, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.ReuseRecord = true
	// ignored lines may not share the data's field count
	reader.FieldsPerRecord = -1

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, schema.Schema{}, err
		}
	}

	columns := p.conf.Columns
	if columns == nil {
		header, err := reader.Read()
		if err != nil {
			return nil, schema.Schema{}, err
		}
		columns = make([]string, len(header))
		copy(columns, header)
	}
	reader.FieldsPerRecord = len(columns)

	dataset := make(munge.Dataset, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, schema.Schema{}, err
		}
		row := make(munge.Row, len(columns))
		for i, col := range columns {
			row[col] = p.scanCell(record[i])
		}
		dataset = append(dataset, row)
	}
	return dataset, schema.FromColumns(columns), nil
}

// scanCell converts one DSV field into a cell value
func (p *Parser) scanCell(field string) munge.Value {
	if field == "" || field == p.conf.NilValue {
		return nil
	}
	if p.conf.InferTypes {
		if ival, err := strconv.ParseInt(field, 10, 64); err == nil {
			return ival
		}
		if fval, err := strconv.ParseFloat(field, 64); err == nil {
			return fval
		}
	}
	return field
}
