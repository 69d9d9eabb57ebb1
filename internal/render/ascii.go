package render

import (
	"strings"

	"github.com/san-kum/mazegen/internal/maze"
)

const (
	glyphCurrent   = " @ "
	glyphGoal      = " G "
	glyphUnvisited = " . "
	glyphVisited   = "   "
)

// ASCII renders the snapshot as +---+ box art.
func ASCII(cells [][]maze.Cell, current *maze.Position) string {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("+")
	for _, c := range cells[0] {
		sb.WriteString(hline(c.Walls.Top))
	}
	sb.WriteString("\n")

	for _, row := range cells {
		sb.WriteString(vline(row[0].Walls.Left))
		for _, c := range row {
			sb.WriteString(interior(c, current))
			sb.WriteString(vline(c.Walls.Right))
		}
		sb.WriteString("\n+")
		for _, c := range row {
			sb.WriteString(hline(c.Walls.Bottom))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func hline(wall bool) string {
	if wall {
		return "---+"
	}
	return "   +"
}

func vline(wall bool) string {
	if wall {
		return "|"
	}
	return " "
}

func interior(c maze.Cell, current *maze.Position) string {
	switch {
	case current != nil && *current == c.Pos:
		return glyphCurrent
	case c.Goal:
		return glyphGoal
	case !c.Visited:
		return glyphUnvisited
	default:
		return glyphVisited
	}
}
