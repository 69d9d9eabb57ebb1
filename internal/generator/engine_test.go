package generator_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mazegen/internal/generator"
	"github.com/san-kum/mazegen/internal/maze"
)

func newGrid(rows, cols int) *maze.Grid {
	g, err := maze.New(rows, cols)
	Expect(err).NotTo(HaveOccurred())
	return g
}

func pos(r, c int) maze.Position { return maze.Position{Row: r, Col: c} }

var _ = Describe("Engine", func() {
	Describe("initialization", func() {
		It("starts at the top-left cell, already visited", func() {
			g := newGrid(3, 3)
			eng := generator.New(g, generator.FirstIndex{})

			Expect(eng.Current()).To(Equal(pos(0, 0)))
			Expect(eng.State()).To(Equal(generator.StateReady))
			Expect(eng.StackDepth()).To(BeZero())
			Expect(g.Visited(pos(0, 0))).To(BeTrue())
			Expect(g.VisitedCount()).To(Equal(1))
		})

		It("falls back to a random source when none is given", func() {
			eng := generator.New(newGrid(4, 4), nil)
			Expect(eng.Run(context.Background(), nil)).To(Succeed())
			Expect(eng.Grid().VisitedCount()).To(Equal(16))
		})
	})

	Describe("a 1x1 grid", func() {
		It("is done immediately with no wall removals", func() {
			g := newGrid(1, 1)
			eng := generator.New(g, generator.FirstIndex{})
			rec := generator.NewRecorder()
			eng.AddObserver(rec)

			Expect(eng.IsDone()).To(BeTrue())
			Expect(eng.Step()).To(Equal(generator.Done))
			Expect(rec.Removals()).To(BeEmpty())

			c, ok := g.Cell(pos(0, 0))
			Expect(ok).To(BeTrue())
			Expect(c.Goal).To(BeTrue())
			Expect(c.Visited).To(BeTrue())
			Expect(c.Walls.Count()).To(Equal(4))
		})
	})

	Describe("a 2x2 grid that always picks the first candidate", func() {
		var (
			g   *maze.Grid
			eng *generator.Engine
			rec *generator.Recorder
		)

		BeforeEach(func() {
			g = newGrid(2, 2)
			eng = generator.New(g, generator.FirstIndex{})
			rec = generator.NewRecorder()
			eng.AddObserver(rec)
			Expect(eng.Run(context.Background(), nil)).To(Succeed())
		})

		It("produces the expected trace", func() {
			Expect(rec.Results()).To(Equal([]generator.StepResult{
				generator.Advanced,
				generator.Advanced,
				generator.Advanced,
				generator.Backtracked,
				generator.Backtracked,
				generator.Backtracked,
				generator.Done,
			}))
			Expect(rec.Removals()).To(Equal([][2]maze.Position{
				{pos(0, 0), pos(1, 0)},
				{pos(1, 0), pos(1, 1)},
				{pos(1, 1), pos(0, 1)},
			}))
		})

		It("removes the bottom, right and remaining walls", func() {
			c00, _ := g.Cell(pos(0, 0))
			c10, _ := g.Cell(pos(1, 0))
			c11, _ := g.Cell(pos(1, 1))
			c01, _ := g.Cell(pos(0, 1))

			Expect(c00.Walls).To(Equal(maze.Walls{Top: true, Right: true, Bottom: false, Left: true}))
			Expect(c10.Walls).To(Equal(maze.Walls{Top: false, Right: false, Bottom: true, Left: true}))
			Expect(c11.Walls).To(Equal(maze.Walls{Top: false, Right: true, Bottom: true, Left: false}))
			Expect(c01.Walls).To(Equal(maze.Walls{Top: true, Right: true, Bottom: false, Left: true}))
			Expect(g.VisitedCount()).To(Equal(4))
		})

		It("ends back at the start with an empty stack", func() {
			Expect(eng.Current()).To(Equal(pos(0, 0)))
			Expect(eng.StackDepth()).To(BeZero())
			Expect(eng.State()).To(Equal(generator.StateDone))
			Expect(eng.Steps()).To(Equal(7))
		})
	})

	Describe("completed traversals", func() {
		sizes := [][2]int{{1, 7}, {7, 1}, {2, 2}, {3, 8}, {8, 3}, {9, 9}, {16, 24}}

		for _, size := range sizes {
			rows, cols := size[0], size[1]
			for _, seed := range []int64{1, 42, 1337} {
				It(fmt.Sprintf("forms a spanning tree on %dx%d (seed %d)", rows, cols, seed), func() {
					g := newGrid(rows, cols)
					eng := generator.New(g, generator.NewSeeded(seed))
					rec := generator.NewRecorder()
					eng.AddObserver(rec)

					Expect(eng.Run(context.Background(), nil)).To(Succeed())
					Expect(eng.IsDone()).To(BeTrue())

					Expect(g.VisitedCount()).To(Equal(rows * cols))
					removals := rec.Removals()
					Expect(removals).To(HaveLen(rows*cols - 1))
					Expect(openEdges(g)).To(Equal(rows*cols - 1))

					uf := newUnionFind(g.Len())
					for _, edge := range removals {
						Expect(uf.union(index(g, edge[0]), index(g, edge[1]))).To(BeTrue(), "edge %v closes a cycle", edge)
					}
					root := uf.find(0)
					for i := 1; i < g.Len(); i++ {
						Expect(uf.find(i)).To(Equal(root))
					}
					Expect(wallsAgree(g)).To(BeTrue())
				})
			}
		}

		It("advances exactly once into every cell but the start", func() {
			g := newGrid(6, 5)
			eng := generator.New(g, generator.NewSeeded(9))
			rec := generator.NewRecorder()
			eng.AddObserver(rec)
			Expect(eng.Run(context.Background(), nil)).To(Succeed())

			entered := map[maze.Position]int{}
			for _, edge := range rec.Removals() {
				entered[edge[1]]++
			}
			Expect(entered).To(HaveLen(29))
			Expect(entered).NotTo(HaveKey(pos(0, 0)))
			for p, n := range entered {
				Expect(n).To(Equal(1), "cell %s", p)
			}
		})
	})

	Describe("wall symmetry", func() {
		It("holds after every single step", func() {
			g := newGrid(7, 4)
			eng := generator.New(g, generator.NewSeeded(5))
			for !eng.IsDone() {
				before := g.Snapshot()
				from := eng.Current()
				res := eng.Step()
				Expect(wallsAgree(g)).To(BeTrue())

				after := g.Snapshot()
				for r := range after {
					for c := range after[r] {
						p := pos(r, c)
						if res == generator.Advanced && (p == from || p == eng.Current()) {
							continue
						}
						Expect(after[r][c].Walls).To(Equal(before[r][c].Walls), "cell %s changed", p)
					}
				}
			}
		})
	})

	Describe("the Done state", func() {
		It("is idempotent", func() {
			g := newGrid(5, 5)
			eng := generator.New(g, generator.NewSeeded(3))
			Expect(eng.Run(context.Background(), nil)).To(Succeed())

			snap := g.Snapshot()
			cur, depth, steps := eng.Current(), eng.StackDepth(), eng.Steps()

			rec := generator.NewRecorder()
			eng.AddObserver(rec)
			for i := 0; i < 10; i++ {
				Expect(eng.Step()).To(Equal(generator.Done))
			}

			Expect(g.Snapshot()).To(Equal(snap))
			Expect(eng.Current()).To(Equal(cur))
			Expect(eng.StackDepth()).To(Equal(depth))
			Expect(eng.Steps()).To(Equal(steps))
			Expect(rec.Events()).To(BeEmpty())
		})
	})

	Describe("determinism", func() {
		It("replays identically for equal seeds", func() {
			run := func() ([]generator.Event, [][]maze.Cell) {
				g := newGrid(11, 8)
				eng := generator.New(g, generator.NewSeeded(2024))
				rec := generator.NewRecorder()
				eng.AddObserver(rec)
				Expect(eng.Run(context.Background(), nil)).To(Succeed())
				return rec.Events(), g.Snapshot()
			}

			ev1, snap1 := run()
			ev2, snap2 := run()
			Expect(ev1).To(Equal(ev2))
			Expect(snap1).To(Equal(snap2))
		})

		It("follows the injected choices in top, bottom, right, left order", func() {
			g := newGrid(3, 3)
			// (0,0) offers bottom then right; (1,0) offers bottom then right
			eng := generator.New(g, &scripted{picks: []int{0, 1}})
			Expect(eng.Step()).To(Equal(generator.Advanced))
			Expect(eng.Current()).To(Equal(pos(1, 0)))
			Expect(eng.Step()).To(Equal(generator.Advanced))
			Expect(eng.Current()).To(Equal(pos(1, 1)))
		})
	})

	Describe("Run", func() {
		It("stops when the callback declines, leaving a consistent partial maze", func() {
			g := newGrid(10, 10)
			eng := generator.New(g, generator.NewSeeded(11))
			calls := 0
			Expect(eng.Run(context.Background(), func(generator.StepResult) bool {
				calls++
				return calls < 15
			})).To(Succeed())

			Expect(calls).To(Equal(15))
			Expect(eng.IsDone()).To(BeFalse())
			Expect(eng.State()).To(Equal(generator.StateStepping))
			Expect(wallsAgree(g)).To(BeTrue())
			Expect(openEdges(g)).To(Equal(g.VisitedCount() - 1))
		})

		It("returns the context error when canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			eng := generator.New(newGrid(4, 4), generator.FirstIndex{})
			Expect(eng.Run(ctx, nil)).To(MatchError(context.Canceled))
			Expect(eng.Steps()).To(BeZero())
		})
	})

	Describe("invariant violations", func() {
		It("panics with an InvariantError on an out-of-range choice", func() {
			eng := generator.New(newGrid(3, 3), badSource{})
			Expect(func() { eng.Step() }).To(PanicWith(BeAssignableToTypeOf(&generator.InvariantError{})))
		})
	})
})

type badSource struct{}

func (badSource) Intn(n int) int { return n }
