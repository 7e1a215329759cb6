// Package grid stores a rectangular 2D map of cell markers for the patrol
// simulator and the obstruction search.
//
// What:
//
//   - Grid wraps a rectangular table of Cell markers (Open, Obstacle, Start).
//   - Lookup answers bounds-checked queries; leaving the grid is a normal
//     outcome reported through the ok flag, never a panic.
//   - WithObstacle derives a copy with one cell forced to Obstacle, leaving
//     the receiver untouched (copy-on-write).
//   - FindStart locates the guard's start marker.
//   - Parse builds a Grid from puzzle text ('#' obstacle, '^' start).
//
// Complexity:
//
//   - New, Parse, WithObstacle: O(R×C) time and memory.
//   - Lookup, InBounds:         O(1).
//   - FindStart, Count:         O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:     input has no rows or no columns.
//   - ErrMalformedGrid: rows have differing lengths.
//   - ErrMissingStart:  no cell holds the requested start marker.
//   - ErrOutOfBounds:   WithObstacle target lies outside the grid.
package grid
