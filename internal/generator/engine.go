package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/zyedidia/generic/stack"

	"github.com/san-kum/mazegen/internal/maze"
)

// Engine is a steppable randomized depth-first traversal over a grid.
type Engine struct {
	grid      *maze.Grid
	src       IndexSource
	current   maze.Position
	backtrack *stack.Stack[maze.Position]
	state     State
	steps     int
	observers []Observer
}

// New positions the traversal at the grid start and marks it visited so the
// first frame already shows it. A nil src falls back to a time-seeded source.
func New(grid *maze.Grid, src IndexSource) *Engine {
	if src == nil {
		src = NewSeeded(time.Now().UnixNano())
	}
	e := &Engine{
		grid:      grid,
		src:       src,
		current:   grid.Start(),
		backtrack: stack.New[maze.Position](),
		state:     StateReady,
		observers: make([]Observer, 0),
	}
	e.must(grid.MarkVisited(e.current), e.current, e.current)

	// a start without frontier (1x1) has nothing to generate
	if len(e.frontier()) == 0 {
		e.state = StateDone
	}
	return e
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

func (e *Engine) Grid() *maze.Grid       { return e.grid }
func (e *Engine) Current() maze.Position { return e.current }
func (e *Engine) State() State           { return e.state }
func (e *Engine) IsDone() bool           { return e.state == StateDone }
func (e *Engine) StackDepth() int        { return e.backtrack.Size() }

// Steps returns the number of state-changing steps taken so far.
func (e *Engine) Steps() int { return e.steps }

// Step performs one atomic transition: advance into a random unvisited
// neighbour, backtrack to the last resume point, or finish. Once done,
// Step changes nothing and keeps returning Done.
func (e *Engine) Step() StepResult {
	if e.state == StateDone {
		return Done
	}
	e.state = StateStepping
	e.steps++

	from := e.current
	frontier := e.frontier()

	switch {
	case len(frontier) > 0:
		idx := e.src.Intn(len(frontier))
		if idx < 0 || idx >= len(frontier) {
			e.fail(fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, idx, len(frontier)), from, from)
		}
		next := frontier[idx]

		e.must(e.grid.MarkVisited(next), from, next)
		e.backtrack.Push(from)
		e.must(e.grid.RemoveWallBetween(from, next), from, next)
		e.current = next
		e.emit(Advanced, from, next)
		return Advanced

	case e.backtrack.Size() > 0:
		e.current = e.backtrack.Pop()
		e.emit(Backtracked, from, e.current)
		return Backtracked

	default:
		e.state = StateDone
		e.emit(Done, from, from)
		return Done
	}
}

// Run steps until the traversal finishes, ctx is canceled, or fn returns
// false. fn may be nil. Stopping early leaves a consistent partial maze.
func (e *Engine) Run(ctx context.Context, fn func(StepResult) bool) error {
	for !e.IsDone() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		res := e.Step()
		if fn != nil && !fn(res) {
			return nil
		}
	}
	return nil
}

func (e *Engine) frontier() []maze.Position {
	neighbors := e.grid.NeighborsOf(e.current)
	out := neighbors[:0]
	for _, n := range neighbors {
		if !e.grid.Visited(n) {
			out = append(out, n)
		}
	}
	return out
}

func (e *Engine) emit(res StepResult, from, to maze.Position) {
	if len(e.observers) == 0 {
		return
	}
	ev := Event{
		Step:   e.steps,
		Result: res,
		From:   from,
		To:     to,
		Depth:  e.backtrack.Size(),
	}
	for _, o := range e.observers {
		o.OnStep(ev)
	}
}

func (e *Engine) must(err error, from, to maze.Position) {
	if err != nil {
		e.fail(err, from, to)
	}
}

func (e *Engine) fail(err error, from, to maze.Position) {
	panic(&InvariantError{Step: e.steps, From: from, To: to, Wrapped: err})
}
