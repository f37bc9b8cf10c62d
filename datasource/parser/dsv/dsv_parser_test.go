package dsv

import (
	"strings"
	"testing"

	"github.com/go-munge/munge"
	"github.com/stretchr/testify/require"
)

func TestDSVParser(t *testing.T) {
	data := "name,age,city\nSean,34,Toronto\nChris,29,Montreal"
	parser := CreateParser(&ParserConf{InferTypes: true})
	dataset, sch, err := parser.Parse(strings.NewReader(data))
	require.Nil(t, err)
	require.Equal(t, []string{"name", "age", "city"}, sch.Columns())
	require.Equal(t, munge.Dataset{
		{"name": "Sean", "age": int64(34), "city": "Toronto"},
		{"name": "Chris", "age": int64(29), "city": "Montreal"},
	}, dataset)
}

func TestDSVParserNilValues(t *testing.T) {
	data := "a,b\n1,NA\n,2"
	parser := CreateParser(&ParserConf{NilValue: "NA", InferTypes: true})
	dataset, _, err := parser.Parse(strings.NewReader(data))
	require.Nil(t, err)
	require.Nil(t, dataset[0]["b"])
	require.Nil(t, dataset[1]["a"])
	require.Equal(t, int64(2), dataset[1]["b"])
}

func TestDSVParserExplicitColumns(t *testing.T) {
	data := "1;2.5\n3;4.5"
	parser := CreateParser(&ParserConf{
		Delimiter:  ';',
		Columns:    []string{"x", "y"},
		InferTypes: true,
	})
	dataset, sch, err := parser.Parse(strings.NewReader(data))
	require.Nil(t, err)
	require.Equal(t, []string{"x", "y"}, sch.Columns())
	require.Equal(t, munge.Dataset{
		{"x": int64(1), "y": 2.5},
		{"x": int64(3), "y": 4.5},
	}, dataset)
}

func TestDSVParserHeaderLines(t *testing.T) {
	data := "# produced by export job\na,b\n1,2"
	parser := CreateParser(&ParserConf{HeaderLines: 1, InferTypes: true})
	dataset, sch, err := parser.Parse(strings.NewReader(data))
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b"}, sch.Columns())
	require.Len(t, dataset, 1)
}

func TestDSVParserWithoutInference(t *testing.T) {
	data := "a\n42"
	parser := CreateParser(&ParserConf{})
	dataset, _, err := parser.Parse(strings.NewReader(data))
	require.Nil(t, err)
	require.Equal(t, "42", dataset[0]["a"])
}
