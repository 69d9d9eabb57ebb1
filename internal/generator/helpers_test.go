package generator_test

import (
	"github.com/san-kum/mazegen/internal/maze"
)

// unionFind is a disjoint-set over row-major cell indices with path
// compression and union by rank.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// union reports false when a and b were already connected, i.e. the edge
// would close a cycle.
func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
	return true
}

func index(g *maze.Grid, p maze.Position) int {
	return p.Row*g.Cols() + p.Col
}

// wallsAgree checks every right and bottom edge against its neighbour.
func wallsAgree(g *maze.Grid) bool {
	snap := g.Snapshot()
	for r := range snap {
		for c := range snap[r] {
			if c+1 < g.Cols() && snap[r][c].Walls.Right != snap[r][c+1].Walls.Left {
				return false
			}
			if r+1 < g.Rows() && snap[r][c].Walls.Bottom != snap[r+1][c].Walls.Top {
				return false
			}
		}
	}
	return true
}

// openEdges counts removed interior walls.
func openEdges(g *maze.Grid) int {
	snap := g.Snapshot()
	n := 0
	for r := range snap {
		for c := range snap[r] {
			if c+1 < g.Cols() && !snap[r][c].Walls.Right {
				n++
			}
			if r+1 < g.Rows() && !snap[r][c].Walls.Bottom {
				n++
			}
		}
	}
	return n
}

// scripted replays a fixed sequence of choices, then keeps picking 0.
type scripted struct {
	picks []int
}

func (s *scripted) Intn(n int) int {
	if len(s.picks) == 0 {
		return 0
	}
	v := s.picks[0]
	s.picks = s.picks[1:]
	return v
}
