package pipeline

import (
	"fmt"

	"github.com/go-munge/munge/transform"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// StageConfig describes one pipeline stage in a configuration file. Op
// selects the stage type; the remaining fields apply per Op.
type StageConfig struct {
	Op           string            `yaml:"op"`
	Strategy     string            `yaml:"strategy,omitempty"`
	Columns      []string          `yaml:"columns,omitempty"`
	Rows         []int             `yaml:"rows,omitempty"`
	Column       string            `yaml:"column,omitempty"`
	Aggregations map[string]string `yaml:"aggregations,omitempty"`
	Fraction     float64           `yaml:"fraction,omitempty"`
	Seed         *int64            `yaml:"seed,omitempty"`
	PivotColumn  string            `yaml:"pivot_column,omitempty"`
	ValueColumn  string            `yaml:"value_column,omitempty"`
}

// Config is the YAML shape of a pipeline definition.
type Config struct {
	Stages []StageConfig `yaml:"stages"`
}

// ParseConfig parses a YAML pipeline definition.
func ParseConfig(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}
	return &conf, nil
}

var validStrategies = map[string]bool{
	string(transform.StrategyMean):   true,
	string(transform.StrategyMedian): true,
	string(transform.StrategyMode):   true,
	string(transform.StrategyRemove): true,
}

var validAggregations = map[string]bool{
	string(transform.AggregationSum):  true,
	string(transform.AggregationMean): true,
	string(transform.AggregationMax):  true,
}

// Build validates every stage of this Config and assembles a Pipeline
// logging to the given logger. All validation failures are collected and
// returned together rather than one at a time.
func (c *Config) Build(log *zap.Logger) (*Pipeline, error) {
	var errs *multierror.Error
	p := CreatePipeline(log)
	for i, sc := range c.Stages {
		stage, err := buildStage(sc)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("stage %d: %w", i, err))
			continue
		}
		p.Add(stage)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return p, nil
}

func buildStage(sc StageConfig) (Stage, error) {
	switch sc.Op {
	case "clean":
		if !validStrategies[sc.Strategy] {
			return nil, fmt.Errorf("clean: unknown strategy %q", sc.Strategy)
		}
		return CleanStage{Strategy: transform.Strategy(sc.Strategy)}, nil
	case "select":
		return SelectStage{Columns: sc.Columns, Rows: sc.Rows}, nil
	case "groupby":
		if sc.Column == "" {
			return nil, fmt.Errorf("groupby: column is required")
		}
		if len(sc.Aggregations) == 0 {
			return nil, fmt.Errorf("groupby: at least one aggregation is required")
		}
		aggs := make(map[string]transform.Aggregation, len(sc.Aggregations))
		for col, kind := range sc.Aggregations {
			if !validAggregations[kind] {
				return nil, fmt.Errorf("groupby: unknown aggregation %q for column %s", kind, col)
			}
			aggs[col] = transform.Aggregation(kind)
		}
		return GroupByStage{Column: sc.Column, Aggregations: aggs}, nil
	case "sample":
		if sc.Fraction < 0 || sc.Fraction > 1 {
			return nil, fmt.Errorf("sample: fraction %v is outside [0,1]", sc.Fraction)
		}
		return SampleStage{Fraction: sc.Fraction, Seed: sc.Seed}, nil
	case "pivot":
		if sc.PivotColumn == "" || sc.ValueColumn == "" {
			return nil, fmt.Errorf("pivot: pivot_column and value_column are required")
		}
		return PivotStage{PivotColumn: sc.PivotColumn, ValueColumn: sc.ValueColumn}, nil
	default:
		return nil, fmt.Errorf("unknown op %q", sc.Op)
	}
}
