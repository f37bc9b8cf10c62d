// Package pipeline composes transforms into ordered, observable runs, so a
// caller can express impute -> select -> group-by as one configured unit.
package pipeline

import (
	"math/rand"
	"time"

	"github.com/go-munge/munge"
	"github.com/go-munge/munge/transform"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// Stage is one step of a Pipeline: a named transform over a Dataset.
type Stage interface {
	Name() string
	Apply(munge.Dataset) (munge.Dataset, error)
}

// Pipeline runs Stages in order, feeding each stage's output to the next.
type Pipeline struct {
	stages []Stage
	log    *zap.Logger
}

// CreatePipeline returns an empty Pipeline which logs stage execution to the
// given logger. A nil logger disables logging.
func CreatePipeline(log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{log: log}
}

// Add appends a Stage to this Pipeline and returns the Pipeline for chaining.
func (p *Pipeline) Add(s Stage) *Pipeline {
	p.stages = append(p.stages, s)
	return p
}

// Run executes every Stage in order over the given Dataset, stopping at the
// first stage error. Each run is logged under a fresh run ID.
func (p *Pipeline) Run(d munge.Dataset) (munge.Dataset, error) {
	runID := uuid.Must(uuid.NewV4())
	log := p.log.With(zap.String("run", runID.String()))

	current := d
	for _, s := range p.stages {
		start := time.Now()
		in := len(current)
		next, err := s.Apply(current)
		if err != nil {
			log.Error("stage failed",
				zap.String("stage", s.Name()),
				zap.Error(err))
			return nil, err
		}
		log.Info("stage complete",
			zap.String("stage", s.Name()),
			zap.Int("rows_in", in),
			zap.Int("rows_out", len(next)),
			zap.Duration("elapsed", time.Since(start)))
		current = next
	}
	return current, nil
}

// MapStage applies a transform.MapOperation to one column.
type MapStage struct {
	Column string
	Fn     transform.MapOperation
}

// Name identifies this stage in logs
func (s MapStage) Name() string { return "map_column" }

// Apply runs the stage
func (s MapStage) Apply(d munge.Dataset) (munge.Dataset, error) {
	return transform.MapColumn(d, s.Column, s.Fn)
}

// CleanStage handles missing values with a transform.Strategy.
type CleanStage struct {
	Strategy transform.Strategy
}

// Name identifies this stage in logs
func (s CleanStage) Name() string { return "clean" }

// Apply runs the stage
func (s CleanStage) Apply(d munge.Dataset) (munge.Dataset, error) {
	return transform.Clean(d, s.Strategy)
}

// SelectStage projects columns and/or rows.
type SelectStage struct {
	Columns []string
	Rows    []int
}

// Name identifies this stage in logs
func (s SelectStage) Name() string { return "select" }

// Apply runs the stage
func (s SelectStage) Apply(d munge.Dataset) (munge.Dataset, error) {
	return transform.Select(d, s.Columns, s.Rows), nil
}

// GroupByStage groups rows by a key column and aggregates.
type GroupByStage struct {
	Column       string
	Aggregations map[string]transform.Aggregation
}

// Name identifies this stage in logs
func (s GroupByStage) Name() string { return "groupby" }

// Apply runs the stage
func (s GroupByStage) Apply(d munge.Dataset) (munge.Dataset, error) {
	return transform.GroupBy(d, s.Column, s.Aggregations)
}

// SampleStage draws a random fraction of rows. A nil Seed samples from the
// wall clock, making runs non-reproducible.
type SampleStage struct {
	Fraction float64
	Seed     *int64
}

// Name identifies this stage in logs
func (s SampleStage) Name() string { return "sample" }

// Apply runs the stage
func (s SampleStage) Apply(d munge.Dataset) (munge.Dataset, error) {
	var rng *rand.Rand
	if s.Seed != nil {
		rng = rand.New(rand.NewSource(*s.Seed))
	}
	return transform.Sample(d, s.Fraction, rng), nil
}

// PivotStage reshapes rows into a pivot-column/value-column pair.
type PivotStage struct {
	PivotColumn string
	ValueColumn string
}

// Name identifies this stage in logs
func (s PivotStage) Name() string { return "pivot" }

// Apply runs the stage
func (s PivotStage) Apply(d munge.Dataset) (munge.Dataset, error) {
	return transform.Pivot(d, s.PivotColumn, s.ValueColumn)
}
