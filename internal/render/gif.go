package render

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/mazegen/internal/maze"
)

const (
	idxBackground uint8 = iota
	idxWall
	idxCurrent
	idxGoal
	idxUnvisited
)

var palette = color.Palette{
	color.Black,
	color.White,
	color.RGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xff},
	color.RGBA{R: 83, G: 247, B: 43, A: 0xff},
	color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff},
}

// Frame rasterizes the snapshot onto a size×size paletted image.
func Frame(cells [][]maze.Cell, size int, current *maze.Position) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, size, size), palette)
	if len(cells) == 0 || len(cells[0]) == 0 || size <= 0 {
		return img
	}

	rows, cols := len(cells), len(cells[0])
	cellX := func(col int) int { return col * size / cols }
	cellY := func(row int) int { return row * size / rows }

	for _, row := range cells {
		for _, c := range row {
			x0, y0 := cellX(c.Pos.Col), cellY(c.Pos.Row)
			x1, y1 := cellX(c.Pos.Col+1)-1, cellY(c.Pos.Row+1)-1

			fill := idxBackground
			switch {
			case current != nil && *current == c.Pos:
				fill = idxCurrent
			case c.Goal:
				fill = idxGoal
			case !c.Visited:
				fill = idxUnvisited
			}
			if fill != idxBackground {
				fillRect(img, x0+1, y0+1, x1-1, y1-1, fill)
			}

			if c.Walls.Top {
				fillRect(img, x0, y0, x1, y0, idxWall)
			}
			if c.Walls.Right {
				fillRect(img, x1, y0, x1, y1, idxWall)
			}
			if c.Walls.Bottom {
				fillRect(img, x0, y1, x1, y1, idxWall)
			}
			if c.Walls.Left {
				fillRect(img, x0, y0, x0, y1, idxWall)
			}
		}
	}
	return img
}

func fillRect(img *image.Paletted, x0, y0, x1, y1 int, idx uint8) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.SetColorIndex(x, y, idx)
		}
	}
}

// WriteGIF encodes frames as a looping animation; delay is in 100ths of a
// second per frame.
func WriteGIF(w io.Writer, frames []*image.Paletted, delay int) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
