package pipeline

import (
	"testing"

	"github.com/go-munge/munge"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestConfigBuildAndRun(t *testing.T) {
	content := []byte(`
stages:
  - op: clean
    strategy: mean
  - op: select
    columns: [g, v]
  - op: groupby
    column: g
    aggregations:
      v: sum
`)
	conf, err := ParseConfig(content)
	require.Nil(t, err)
	require.Len(t, conf.Stages, 3)

	p, err := conf.Build(nil)
	require.Nil(t, err)

	result, err := p.Run(munge.Dataset{
		{"g": "a", "v": 4},
		{"g": "a", "v": nil},
		{"g": "b", "v": 6},
	})
	require.Nil(t, err)
	// nil imputed to the column mean of 5 before grouping
	require.Equal(t, munge.Dataset{
		{"g": "a", "v": 9.0},
		{"g": "b", "v": 6.0},
	}, result)
}

func TestConfigCollectsAllValidationErrors(t *testing.T) {
	content := []byte(`
stages:
  - op: clean
    strategy: drop
  - op: groupby
    column: g
    aggregations:
      v: min
  - op: resample
`)
	conf, err := ParseConfig(content)
	require.Nil(t, err)

	_, err = conf.Build(nil)
	require.NotNil(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 3)
}

func TestConfigRejectsMalformedYAML(t *testing.T) {
	_, err := ParseConfig([]byte("stages: ["))
	require.NotNil(t, err)
}

func TestConfigSampleFractionBounds(t *testing.T) {
	content := []byte(`
stages:
  - op: sample
    fraction: 1.5
`)
	conf, err := ParseConfig(content)
	require.Nil(t, err)
	_, err = conf.Build(nil)
	require.NotNil(t, err)
}
