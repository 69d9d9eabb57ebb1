package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mazegen/internal/maze"
)

// drawMaze renders the snapshot as box art with themed cell fills. The
// layout matches render.ASCII so both hosts show the same geometry.
func drawMaze(cells [][]maze.Cell, current maze.Position, st themeStyles) string {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(st.wall.Render("+"))
	for _, c := range cells[0] {
		sb.WriteString(st.wall.Render(hsegment(c.Walls.Top)))
	}
	sb.WriteString("\n")

	for _, row := range cells {
		sb.WriteString(st.wall.Render(vsegment(row[0].Walls.Left)))
		for _, c := range row {
			sb.WriteString(cellStyle(c, current, st).Render("   "))
			sb.WriteString(st.wall.Render(vsegment(c.Walls.Right)))
		}
		sb.WriteString("\n")
		sb.WriteString(st.wall.Render("+"))
		for _, c := range row {
			sb.WriteString(st.wall.Render(hsegment(c.Walls.Bottom)))
		}
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func hsegment(wall bool) string {
	if wall {
		return "---+"
	}
	return "   +"
}

func vsegment(wall bool) string {
	if wall {
		return "|"
	}
	return " "
}

func cellStyle(c maze.Cell, current maze.Position, st themeStyles) lipgloss.Style {
	switch {
	case c.Pos == current:
		return st.current
	case c.Goal:
		return st.goal
	case !c.Visited:
		return st.unvisited
	default:
		return st.visited
	}
}
