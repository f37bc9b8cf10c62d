package munge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsMissing(t *testing.T) {
	require.True(t, IsMissing(nil))
	require.True(t, IsMissing(""))
	require.False(t, IsMissing(0))
	require.False(t, IsMissing(0.0))
	require.False(t, IsMissing("0"))
	require.False(t, IsMissing(false))
	require.False(t, IsMissing([]Value{}))
}

func TestRowClone(t *testing.T) {
	row := Row{"a": 1}
	clone := row.Clone()
	clone["a"] = 2
	clone["b"] = 3
	require.Equal(t, Row{"a": 1}, row)
}

func TestDatasetClone(t *testing.T) {
	dataset := Dataset{{"a": 1}, {"a": 2}}
	clone := dataset.Clone()
	clone[0]["a"] = 99
	require.Equal(t, 1, dataset[0]["a"])
}
