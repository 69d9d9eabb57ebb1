package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/mazegen/internal/maze"
)

const (
	svgBackground = "#000000"
	svgWall       = "#ffffff"
	svgCurrent    = "#800080"
	svgGoal       = "rgb(83, 247, 43)"
	svgUnvisited  = "#1a1a1a"
)

// SVG renders the snapshot onto a size×size square; each cell is
// size/cols wide and size/rows tall.
func SVG(cells [][]maze.Cell, size int, current *maze.Position) string {
	if len(cells) == 0 || len(cells[0]) == 0 || size <= 0 {
		return ""
	}

	rows, cols := len(cells), len(cells[0])
	cw := float64(size) / float64(cols)
	ch := float64(size) / float64(rows)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, size, size, size, size, svgBackground))

	for _, row := range cells {
		for _, c := range row {
			x, y := float64(c.Pos.Col)*cw, float64(c.Pos.Row)*ch
			fill := ""
			switch {
			case current != nil && *current == c.Pos:
				fill = svgCurrent
			case c.Goal:
				fill = svgGoal
			case !c.Visited:
				fill = svgUnvisited
			}
			if fill != "" {
				sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x+1, y+1, cw-2, ch-2, fill))
			}
		}
	}

	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="2" stroke-linecap="square">
`, svgWall))
	for _, row := range cells {
		for _, c := range row {
			x, y := float64(c.Pos.Col)*cw, float64(c.Pos.Row)*ch
			if c.Walls.Top {
				writeLine(&sb, x, y, x+cw, y)
			}
			if c.Walls.Right {
				writeLine(&sb, x+cw, y, x+cw, y+ch)
			}
			if c.Walls.Bottom {
				writeLine(&sb, x, y+ch, x+cw, y+ch)
			}
			if c.Walls.Left {
				writeLine(&sb, x, y, x, y+ch)
			}
		}
	}
	sb.WriteString("</g>\n</svg>")

	return sb.String()
}

func writeLine(sb *strings.Builder, x1, y1, x2, y2 float64) {
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x1, y1, x2, y2))
}
