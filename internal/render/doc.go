// Package render draws grid snapshots for hosts that are not the live
// terminal view: plain ASCII art, SVG documents and animated GIF frames.
//
// All renderers take the [][]maze.Cell returned by [maze.Grid.Snapshot]
// plus an optional current position to highlight, so they can run between
// any two generator steps.
package render
