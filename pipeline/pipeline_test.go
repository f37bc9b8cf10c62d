package pipeline

import (
	"testing"

	"github.com/go-munge/munge"
	"github.com/go-munge/munge/transform"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestPipelineCleanSelectGroupBy(t *testing.T) {
	defer goleak.VerifyNone(t)
	dataset := munge.Dataset{
		{"g": "a", "v": 10, "noise": "x"},
		{"g": "a", "v": nil, "noise": "y"},
		{"g": "b", "v": 5, "noise": "z"},
	}
	p := CreatePipeline(zap.NewNop()).
		Add(CleanStage{Strategy: transform.StrategyRemove}).
		Add(SelectStage{Columns: []string{"g", "v"}}).
		Add(GroupByStage{Column: "g", Aggregations: map[string]transform.Aggregation{"v": transform.AggregationSum}})

	result, err := p.Run(dataset)
	require.Nil(t, err)
	require.Equal(t, munge.Dataset{
		{"g": "a", "v": 10.0},
		{"g": "b", "v": 5.0},
	}, result)
}

func TestPipelineStopsAtFirstError(t *testing.T) {
	dataset := munge.Dataset{
		{"v": 1},
	}
	p := CreatePipeline(nil).
		Add(GroupByStage{Column: "missing", Aggregations: map[string]transform.Aggregation{"v": transform.AggregationSum}}).
		Add(SelectStage{Columns: []string{"v"}})

	_, err := p.Run(dataset)
	require.NotNil(t, err)
}

func TestPipelineSampleStageDeterministicWithSeed(t *testing.T) {
	dataset := make(munge.Dataset, 10)
	for i := range dataset {
		dataset[i] = munge.Row{"v": i}
	}
	seed := int64(11)
	stage := SampleStage{Fraction: 0.5, Seed: &seed}

	first, err := stage.Apply(dataset)
	require.Nil(t, err)
	second, err := stage.Apply(dataset)
	require.Nil(t, err)
	require.Equal(t, first, second)
	require.Len(t, first, 5)
}
