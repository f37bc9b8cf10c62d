package jsonl

import (
	"bufio"
	"io"

	"github.com/go-munge/munge"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser
type ParserConf struct {
	Columns       []string // Column names as gjson paths. When nil, every top-level field of each line becomes a column.
	HeaderLines   int      // The number of lines to ignore from the beginning of the input. Defaults to 0.
	MaxBufferSize int      // Maximum size in bytes of the buffer used to read lines
}

// Parser produces Datasets from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. When Columns are configured they
// are treated as gjson paths, so nested fields such as "meta.index" resolve;
// paths absent from a line are absent from its Row. Without Columns, each
// line's top-level fields are parsed lazily: JSON null becomes the null
// marker, numbers become float64, arrays become []Value multi-value cells,
// and nested objects are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce a Dataset. Blank lines are skipped.
func (p *Parser) Parse(r io.Reader) (munge.Dataset, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	dataset := make(munge.Dataset, 0)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		parsed := gjson.ParseBytes(line)
		row := make(munge.Row)
		if p.conf.Columns != nil {
			for _, col := range p.conf.Columns {
				if result := parsed.Get(col); result.Exists() {
					row[col] = scanCell(result)
				}
			}
		} else {
			parsed.ForEach(func(key, value gjson.Result) bool {
				if value.IsObject() {
					return true
				}
				row[key.String()] = scanCell(value)
				return true
			})
		}
		dataset = append(dataset, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return dataset, nil
}

// scanCell converts one gjson result into a cell value
func scanCell(result gjson.Result) munge.Value {
	if result.IsArray() {
		elems := result.Array()
		cell := make([]munge.Value, 0, len(elems))
		for _, e := range elems {
			cell = append(cell, scanCell(e))
		}
		return cell
	}
	switch result.Type {
	case gjson.Null:
		return nil
	case gjson.Number:
		return result.Float()
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		return result.String()
	}
}
