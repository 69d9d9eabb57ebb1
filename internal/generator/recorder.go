package generator

import "github.com/san-kum/mazegen/internal/maze"

// Recorder keeps every event it observes.
type Recorder struct {
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{events: make([]Event, 0)}
}

func (r *Recorder) OnStep(ev Event) { r.events = append(r.events, ev) }

func (r *Recorder) Events() []Event { return r.events }

// Removals returns the wall-removal edges in the order they happened.
func (r *Recorder) Removals() [][2]maze.Position {
	out := make([][2]maze.Position, 0, len(r.events))
	for _, ev := range r.events {
		if ev.Result == Advanced {
			out = append(out, [2]maze.Position{ev.From, ev.To})
		}
	}
	return out
}

// Results returns just the step outcomes.
func (r *Recorder) Results() []StepResult {
	out := make([]StepResult, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Result
	}
	return out
}

// Depths returns the backtrack stack depth after each step.
func (r *Recorder) Depths() []float64 {
	out := make([]float64, len(r.events))
	for i, ev := range r.events {
		out[i] = float64(ev.Depth)
	}
	return out
}
