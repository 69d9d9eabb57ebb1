package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/mazegen/internal/generator"
	"github.com/san-kum/mazegen/internal/logging"
	"github.com/san-kum/mazegen/internal/maze"
	"github.com/san-kum/mazegen/internal/metrics"
)

type Config struct {
	Rows   int
	Cols   int
	Seed   int64
	Source string
}

type Result struct {
	Grid    *maze.Grid
	Events  []generator.Event
	Metrics map[string]float64
	Steps   int
	Elapsed time.Duration
}

// Experiment is one headless generation run with its trace and metrics.
type Experiment struct {
	cfg      Config
	engine   *generator.Engine
	recorder *generator.Recorder
	metrics  *metrics.Set
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup builds the grid and engine. Invalid dimensions are rejected here,
// before any step runs.
func (e *Experiment) Setup(reg *Registry) error {
	grid, err := maze.New(e.cfg.Rows, e.cfg.Cols)
	if err != nil {
		return err
	}
	src, err := reg.GetSource(e.cfg.Source, e.cfg.Seed)
	if err != nil {
		return err
	}

	e.engine = generator.New(grid, src)
	e.recorder = generator.NewRecorder()
	e.metrics = metrics.Defaults(e.cfg.Rows, e.cfg.Cols)
	e.engine.AddObserver(e.recorder)
	e.engine.AddObserver(e.metrics)

	logging.Logger().Debug("experiment ready", "rows", e.cfg.Rows, "cols", e.cfg.Cols, "source", e.cfg.Source, "seed", e.cfg.Seed)
	return nil
}

// Run drives the engine to completion.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.engine == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	start := time.Now()
	err := e.engine.Run(ctx, nil)
	result := &Result{
		Grid:    e.engine.Grid(),
		Events:  e.recorder.Events(),
		Metrics: e.metrics.Values(),
		Steps:   e.engine.Steps(),
		Elapsed: time.Since(start),
	}
	if err != nil {
		return result, err
	}

	logging.Logger().Debug("experiment done", "steps", result.Steps, "elapsed", result.Elapsed)
	return result, nil
}

// GetEngine returns the underlying engine for adding observers.
func (e *Experiment) GetEngine() *generator.Engine {
	return e.engine
}

// MetricNames returns the metric names in display order.
func (e *Experiment) MetricNames() []string {
	if e.metrics == nil {
		return nil
	}
	return e.metrics.Names()
}

// Values returns the current metric values, usable while the run is in flight.
func (e *Experiment) Values() map[string]float64 {
	if e.metrics == nil {
		return nil
	}
	return e.metrics.Values()
}
