// Package viz animates maze generation in the terminal.
//
// The package implements a Bubble Tea program where every tick is one
// animation frame and advances the generator by a configurable number of
// steps:
//
//   - [Model]: live generation view with a stack-depth graph
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume generation
//	N     - Single step while paused
//	R     - Restart with the next seed
//	+/-   - More/fewer steps per frame
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// # Recording
//
// Recordings are saved as maze.gif in the current directory.
package viz
