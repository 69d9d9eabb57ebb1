package maze

import "fmt"

// Position addresses a cell by 0-indexed row and column.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Wall names one side of a cell.
type Wall int

const (
	Top Wall = iota
	Right
	Bottom
	Left
)

// AllWalls returns every side in drawing order.
func AllWalls() []Wall {
	return []Wall{Top, Right, Bottom, Left}
}

func (w Wall) String() string {
	switch w {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Opposite returns the side a neighbour uses for the same edge.
func (w Wall) Opposite() Wall {
	switch w {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Right:
		return Left
	case Left:
		return Right
	default:
		return w
	}
}

// Walls holds the four independent wall flags of a cell.
type Walls struct {
	Top    bool
	Right  bool
	Bottom bool
	Left   bool
}

func closedWalls() Walls {
	return Walls{Top: true, Right: true, Bottom: true, Left: true}
}

// Has reports whether the given side is still standing.
func (w Walls) Has(side Wall) bool {
	switch side {
	case Top:
		return w.Top
	case Right:
		return w.Right
	case Bottom:
		return w.Bottom
	case Left:
		return w.Left
	default:
		return false
	}
}

// Count returns the number of standing walls.
func (w Walls) Count() int {
	n := 0
	for _, side := range AllWalls() {
		if w.Has(side) {
			n++
		}
	}
	return n
}

func (w *Walls) clear(side Wall) {
	switch side {
	case Top:
		w.Top = false
	case Right:
		w.Right = false
	case Bottom:
		w.Bottom = false
	case Left:
		w.Left = false
	}
}

// Cell is one grid position with its wall and traversal state.
type Cell struct {
	Pos     Position
	Walls   Walls
	Visited bool
	Goal    bool
}

// IsDeadEnd reports whether exactly one side of the cell is open.
func (c Cell) IsDeadEnd() bool {
	return c.Walls.Count() == 3
}
