package generator

import (
	"math/rand"

	"github.com/san-kum/mazegen/internal/maze"
)

// StepResult is the outcome of a single Step.
type StepResult int

const (
	Advanced StepResult = iota
	Backtracked
	Done
)

func (r StepResult) String() string {
	switch r {
	case Advanced:
		return "advanced"
	case Backtracked:
		return "backtracked"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// State is the lifecycle phase of an Engine.
type State int

const (
	StateReady State = iota
	StateStepping
	StateDone
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateStepping:
		return "stepping"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// IndexSource picks a uniform index in [0, n). *rand.Rand satisfies it.
type IndexSource interface {
	Intn(n int) int
}

// FirstIndex always picks the first candidate.
type FirstIndex struct{}

func (FirstIndex) Intn(int) int { return 0 }

// NewSeeded returns a deterministic source for the given seed.
func NewSeeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Event describes one state transition. For Advanced, From and To are the
// two cells whose shared wall was removed; for Backtracked, To is the
// popped cell; for Done both equal the final cell.
type Event struct {
	Step   int
	Result StepResult
	From   maze.Position
	To     maze.Position
	Depth  int
}

type Observer interface {
	OnStep(ev Event)
}
