// Package generator drives randomized depth-first maze generation one step
// at a time.
//
// The recursive backtracker is flattened into an explicit LIFO stack of
// resume points so a frame-driven host can advance it incrementally:
//
//   - [Engine]: traversal state machine (Ready → Stepping → Done)
//   - [IndexSource]: injectable uniform choice, seedable for reproducibility
//   - [Observer]: receives an [Event] after every step
//   - [Recorder]: observer that keeps the full step trace
//
// # Example
//
//	grid, _ := maze.New(10, 10)
//	eng := generator.New(grid, generator.NewSeeded(42))
//	for !eng.IsDone() {
//	    eng.Step()
//	    draw(grid.Snapshot())
//	}
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. Exactly one goroutine calls Step;
// renderers read the grid only between steps.
package generator
