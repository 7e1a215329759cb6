package grid

import (
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later edits to cells do not leak in.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrMalformedGrid if any row length differs.
// Complexity: O(R×C) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrMalformedGrid
		}
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, 0, rows*cols)}
	for _, row := range cells {
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// Parse builds a Grid from puzzle text, one row per line.
// '#' becomes Obstacle, '^' becomes Start and every other byte is Open.
// Carriage returns and trailing blank lines are ignored.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	cells := make([][]Cell, len(lines))
	for r, line := range lines {
		row := make([]Cell, len(line))
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case ObstacleMarker:
				row[c] = Obstacle
			case StartMarker:
				row[c] = Start
			default:
				row[c] = Open
			}
		}
		cells[r] = row
	}

	return New(cells)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Lookup returns the cell at (row, col). ok is false when the coordinate is
// outside the grid; that is how a patrol detects its exit.
// Complexity: O(1).
func (g *Grid) Lookup(row, col int) (cell Cell, ok bool) {
	if !g.InBounds(row, col) {
		return Open, false
	}
	return g.cells[g.index(row, col)], true
}

// WithObstacle returns a copy of g with (row, col) forced to Obstacle,
// whatever it held before. The receiver is never modified.
// Returns ErrOutOfBounds if the target lies outside the grid.
// Complexity: O(R×C) time and memory.
func (g *Grid) WithObstacle(row, col int) (*Grid, error) {
	if !g.InBounds(row, col) {
		return nil, ErrOutOfBounds
	}
	cp := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	cp.cells[cp.index(row, col)] = Obstacle

	return cp, nil
}

// FindStart scans the grid row by row and returns the first cell holding
// marker. Returns ErrMissingStart if none does.
func (g *Grid) FindStart(marker Cell) (Coord, error) {
	for i, c := range g.cells {
		if c == marker {
			return g.Coordinate(i), nil
		}
	}
	return Coord{}, ErrMissingStart
}

// Count returns how many cells hold marker.
func (g *Grid) Count(marker Cell) int {
	n := 0
	for _, c := range g.cells {
		if c == marker {
			n++
		}
	}
	return n
}

// String renders the grid back to text using the Parse markers.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for i, c := range g.cells {
		sb.WriteByte(c.Byte())
		if (i+1)%g.cols == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// index maps (row, col) to a row-major index: row*cols + col.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}
