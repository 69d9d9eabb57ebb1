package metrics

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/san-kum/mazegen/internal/generator"
	"github.com/san-kum/mazegen/internal/maze"
)

// Spanning reports 1 once the removed walls connect every cell without a
// cycle, 0 otherwise. After the first removal every edge must start inside
// the tree and end outside it: a foreign start splits the tree into a
// forest, a reached end closes a loop.
type Spanning struct {
	cells   int
	reached mapset.Set[maze.Position]
	size    int
	broken  bool
}

func NewSpanning(cells int) *Spanning {
	return &Spanning{
		cells:   cells,
		reached: mapset.New[maze.Position](),
	}
}

func (s *Spanning) Name() string { return "spanning" }

func (s *Spanning) Observe(ev generator.Event) {
	if ev.Result != generator.Advanced {
		return
	}
	if s.size > 0 && !s.reached.Has(ev.From) {
		s.broken = true
		return
	}
	s.touch(ev.From)
	if s.reached.Has(ev.To) {
		s.broken = true
		return
	}
	s.touch(ev.To)
}

func (s *Spanning) touch(p maze.Position) {
	if !s.reached.Has(p) {
		s.reached.Put(p)
		s.size++
	}
}

func (s *Spanning) Value() float64 {
	if s.broken {
		return 0
	}
	if s.cells == 1 || s.size == s.cells {
		return 1
	}
	return 0
}

func (s *Spanning) Reset() {
	s.reached = mapset.New[maze.Position]()
	s.size = 0
	s.broken = false
}
