package metrics

import (
	"sort"

	"github.com/san-kum/mazegen/internal/generator"
)

// Metric accumulates a single number from generation events.
type Metric interface {
	Name() string
	Observe(ev generator.Event)
	Value() float64
	Reset()
}

// Set fans events out to several metrics and is itself a generator.Observer.
type Set struct {
	metrics []Metric
}

func NewSet(ms ...Metric) *Set {
	return &Set{metrics: ms}
}

func (s *Set) OnStep(ev generator.Event) {
	for _, m := range s.metrics {
		m.Observe(ev)
	}
}

func (s *Set) Reset() {
	for _, m := range s.metrics {
		m.Reset()
	}
}

func (s *Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Names returns the metric names in sorted order for stable output.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.metrics))
	for _, m := range s.metrics {
		names = append(names, m.Name())
	}
	sort.Strings(names)
	return names
}

// Defaults returns the standard metrics for a rows×cols grid.
func Defaults(rows, cols int) *Set {
	return NewSet(
		NewCounter("walls_removed", generator.Advanced),
		NewCounter("backtracks", generator.Backtracked),
		NewMaxDepth(),
		NewDeadEnds(),
		NewSpanning(rows*cols),
	)
}
