package render

import (
	"bytes"
	"context"
	"image"
	"image/gif"
	"strings"
	"testing"

	"github.com/san-kum/mazegen/internal/generator"
	"github.com/san-kum/mazegen/internal/maze"
)

func generated(t *testing.T, rows, cols int) *maze.Grid {
	t.Helper()
	g, err := maze.New(rows, cols)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if err := generator.New(g, generator.FirstIndex{}).Run(context.Background(), nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	return g
}

func TestASCII_SingleCell(t *testing.T) {
	g, err := maze.New(1, 1)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	if got, want := ASCII(g.Snapshot(), nil), "+---+\n| G |\n+---+\n"; got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}

	start := g.Start()
	if got, want := ASCII(g.Snapshot(), &start), "+---+\n| @ |\n+---+\n"; got != want {
		t.Errorf("expected current marker\n%s\ngot\n%s", want, got)
	}
}

func TestASCII_TwoByTwo(t *testing.T) {
	g := generated(t, 2, 2)

	want := strings.Join([]string{
		"+---+---+",
		"|   |   |",
		"+   +   +",
		"|     G |",
		"+---+---+",
		"",
	}, "\n")
	if got := ASCII(g.Snapshot(), nil); got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestASCII_Unvisited(t *testing.T) {
	g, err := maze.New(1, 2)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if got, want := ASCII(g.Snapshot(), nil), "+---+---+\n| . | G |\n+---+---+\n"; got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestASCII_Empty(t *testing.T) {
	if ASCII(nil, nil) != "" {
		t.Error("expected empty output for empty snapshot")
	}
}

func TestSVG(t *testing.T) {
	g := generated(t, 2, 2)
	cur := maze.Position{Row: 0, Col: 1}
	out := SVG(g.Snapshot(), 500, &cur)

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>") {
		t.Fatal("expected a complete svg document")
	}
	if !strings.Contains(out, `width="500"`) {
		t.Error("expected 500px extent")
	}
	if !strings.Contains(out, svgGoal) || !strings.Contains(out, svgCurrent) {
		t.Error("expected goal and current fills")
	}

	// 4 cells x 4 walls minus 3 removed edges counted on both sides
	if n := strings.Count(out, "<line "); n != 16-6 {
		t.Errorf("expected 10 wall lines, got %d", n)
	}
}

func TestSVG_InvalidSize(t *testing.T) {
	g := generated(t, 2, 2)
	if SVG(g.Snapshot(), 0, nil) != "" {
		t.Error("expected empty output for zero size")
	}
}

func TestFrame(t *testing.T) {
	g := generated(t, 4, 4)
	img := Frame(g.Snapshot(), 80, nil)

	if img.Bounds() != image.Rect(0, 0, 80, 80) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if img.ColorIndexAt(0, 0) != idxWall {
		t.Error("expected outer wall at the top-left corner")
	}
	// interior of the goal cell (rows 60..79)
	if img.ColorIndexAt(70, 70) != idxGoal {
		t.Error("expected goal fill")
	}
}

func TestWriteGIF(t *testing.T) {
	g := generated(t, 3, 3)
	frames := []*image.Paletted{
		Frame(g.Snapshot(), 60, nil),
		Frame(g.Snapshot(), 60, nil),
	}

	var buf bytes.Buffer
	if err := WriteGIF(&buf, frames, 5); err != nil {
		t.Fatalf("encode: %v", err)
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 2 {
		t.Errorf("expected 2 frames, got %d", len(anim.Image))
	}
}
