package metrics

import "github.com/san-kum/mazegen/internal/generator"

// Counter counts events with a given result.
type Counter struct {
	name   string
	result generator.StepResult
	count  int
}

func NewCounter(name string, result generator.StepResult) *Counter {
	return &Counter{name: name, result: result}
}

func (c *Counter) Name() string { return c.name }

func (c *Counter) Observe(ev generator.Event) {
	if ev.Result == c.result {
		c.count++
	}
}

func (c *Counter) Value() float64 { return float64(c.count) }
func (c *Counter) Reset()         { c.count = 0 }

// MaxDepth tracks the deepest the backtrack stack has been.
type MaxDepth struct {
	max int
}

func NewMaxDepth() *MaxDepth { return &MaxDepth{} }

func (m *MaxDepth) Name() string { return "max_depth" }

func (m *MaxDepth) Observe(ev generator.Event) {
	if ev.Depth > m.max {
		m.max = ev.Depth
	}
}

func (m *MaxDepth) Value() float64 { return float64(m.max) }
func (m *MaxDepth) Reset()         { m.max = 0 }

// DeadEnds counts advances immediately followed by a backtrack, i.e. the
// traversal walked into a cell with no frontier.
type DeadEnds struct {
	count       int
	lastAdvance bool
}

func NewDeadEnds() *DeadEnds { return &DeadEnds{} }

func (d *DeadEnds) Name() string { return "dead_ends" }

func (d *DeadEnds) Observe(ev generator.Event) {
	if ev.Result == generator.Backtracked && d.lastAdvance {
		d.count++
	}
	d.lastAdvance = ev.Result == generator.Advanced
}

func (d *DeadEnds) Value() float64 { return float64(d.count) }

func (d *DeadEnds) Reset() {
	d.count = 0
	d.lastAdvance = false
}
