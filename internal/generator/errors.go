package generator

import (
	"errors"
	"fmt"

	"github.com/san-kum/mazegen/internal/maze"
)

// ErrIndexOutOfRange indicates an IndexSource returned a value outside [0, n).
var ErrIndexOutOfRange = errors.New("generator: index source returned out-of-range choice")

// InvariantError is the panic value raised when a step hits a grid failure.
// Such failures are programming errors, never recoverable conditions.
type InvariantError struct {
	Step    int
	From    maze.Position
	To      maze.Position
	Wrapped error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("generator: invariant violated at step %d (%s -> %s): %v", e.Step, e.From, e.To, e.Wrapped)
}

func (e *InvariantError) Unwrap() error {
	return e.Wrapped
}
