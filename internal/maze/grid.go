package maze

import "fmt"

// Grid is a fixed rows×cols matrix of cells stored in a single arena.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// New allocates a grid with every wall standing and the goal at the
// bottom-right corner.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, rows, cols)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[r*cols+c] = Cell{
				Pos:   Position{Row: r, Col: c},
				Walls: closedWalls(),
			}
		}
	}
	g.cells[len(g.cells)-1].Goal = true
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Len() int  { return len(g.cells) }

// Start returns the top-left cell position where traversal begins.
func (g *Grid) Start() Position { return Position{} }

// Goal returns the bottom-right cell position.
func (g *Grid) Goal() Position { return Position{Row: g.rows - 1, Col: g.cols - 1} }

// InBounds checks the position against the row count and column count independently.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

func (g *Grid) at(p Position) *Cell {
	return &g.cells[p.Row*g.cols+p.Col]
}

// Cell returns a copy of the cell at p.
func (g *Grid) Cell(p Position) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return *g.at(p), true
}

// Visited reports whether the traversal has entered p.
func (g *Grid) Visited(p Position) bool {
	return g.InBounds(p) && g.at(p).Visited
}

// MarkVisited flags p as entered. Visiting is one-way; there is no reset.
func (g *Grid) MarkVisited(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	g.at(p).Visited = true
	return nil
}

// NeighborsOf returns the in-bounds orthogonal neighbours of p in the order
// top, bottom, right, left. Callers rely on this order for reproducible
// seeded traversals.
func (g *Grid) NeighborsOf(p Position) []Position {
	if !g.InBounds(p) {
		return nil
	}
	candidates := [4]Position{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col + 1},
		{Row: p.Row, Col: p.Col - 1},
	}
	out := make([]Position, 0, 4)
	for _, n := range candidates {
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// sharedWall resolves which side of a faces b, from the delta
// (a.Col-b.Col, a.Row-b.Row).
func sharedWall(a, b Position) (Wall, bool) {
	dx, dy := a.Col-b.Col, a.Row-b.Row
	switch {
	case dx == 1 && dy == 0:
		return Left, true
	case dx == -1 && dy == 0:
		return Right, true
	case dx == 0 && dy == 1:
		return Top, true
	case dx == 0 && dy == -1:
		return Bottom, true
	default:
		return 0, false
	}
}

// WallBetween returns the side of a that faces b.
func WallBetween(a, b Position) (Wall, error) {
	side, ok := sharedWall(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
	}
	return side, nil
}

// RemoveWallBetween clears the shared edge on both a and b.
func (g *Grid) RemoveWallBetween(a, b Position) error {
	if !g.InBounds(a) || !g.InBounds(b) {
		return fmt.Errorf("%w: %s and %s", ErrOutOfBounds, a, b)
	}
	side, err := WallBetween(a, b)
	if err != nil {
		return err
	}
	g.at(a).Walls.clear(side)
	g.at(b).Walls.clear(side.Opposite())
	return nil
}

// Snapshot copies every cell, row-major, for a renderer to read between steps.
func (g *Grid) Snapshot() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range out {
		row := make([]Cell, g.cols)
		copy(row, g.cells[r*g.cols:(r+1)*g.cols])
		out[r] = row
	}
	return out
}

// VisitedCount returns how many cells the traversal has entered.
func (g *Grid) VisitedCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Visited {
			n++
		}
	}
	return n
}
