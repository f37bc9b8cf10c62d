package transform

import (
	"testing"

	"github.com/go-munge/munge"
	"github.com/go-munge/munge/errors"
	"github.com/stretchr/testify/require"
)

func TestPivotBasic(t *testing.T) {
	dataset := munge.Dataset{
		{"fruit": "apple", "price": 3, "origin": "CA"},
		{"fruit": "pear", "price": 5, "origin": "MX"},
	}
	pivoted, err := Pivot(dataset, "fruit", "price")
	require.Nil(t, err)
	require.Equal(t, munge.Dataset{
		{"fruit": "apple", "price": 3},
		{"fruit": "pear", "price": 5},
	}, pivoted)
}

func TestPivotLastWriteWins(t *testing.T) {
	dataset := munge.Dataset{
		{"k": "a", "v": 1},
		{"k": "b", "v": 2},
		{"k": "a", "v": 3},
	}
	pivoted, err := Pivot(dataset, "k", "v")
	require.Nil(t, err)
	// one row per distinct key, first-seen order, latest value
	require.Equal(t, munge.Dataset{
		{"k": "a", "v": 3},
		{"k": "b", "v": 2},
	}, pivoted)
}

func TestPivotMissingPivotColumn(t *testing.T) {
	dataset := munge.Dataset{
		{"v": 1},
	}
	_, err := Pivot(dataset, "k", "v")
	require.IsType(t, errors.MissingColumnError{}, err)
}

func TestPivotMissingValueColumn(t *testing.T) {
	dataset := munge.Dataset{
		{"k": "a"},
	}
	_, err := Pivot(dataset, "k", "v")
	require.IsType(t, errors.MissingColumnError{}, err)
}
