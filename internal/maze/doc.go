// Package maze provides the grid model for perfect-maze generation.
//
// A [Grid] owns a fixed rows×cols arena of [Cell] values addressed by
// [Position]. Cells never point at their neighbours; all adjacency is
// resolved through row/column lookups into the owning grid:
//
//   - [New]: allocate a grid with every wall standing
//   - [Grid.NeighborsOf]: in-bounds orthogonal neighbours (top, bottom, right, left)
//   - [Grid.RemoveWallBetween]: clear the shared edge on both cells
//   - [Grid.Snapshot]: copy of every cell for renderers
//
// # Wall Symmetry
//
// For any two adjacent cells the flags describing their shared edge always
// agree. [Grid.RemoveWallBetween] is the only mutator of wall state and it
// clears both sides together.
//
// # Thread Safety
//
// Grid is NOT thread-safe. It is mutated by a single generator between
// frames and read by renderers while no step is in progress.
package maze
