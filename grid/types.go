package grid

import "fmt"

// Cell is a single grid marker.
type Cell uint8

const (
	// Open is a free cell the guard can walk through.
	Open Cell = iota
	// Obstacle blocks forward movement and makes the guard turn.
	Obstacle
	// Start marks the guard's initial position. It is walkable.
	Start
)

// Text markers used by Parse and String.
const (
	OpenMarker     = '.'
	ObstacleMarker = '#'
	StartMarker    = '^'
)

// Byte returns the text marker for c.
func (c Cell) Byte() byte {
	switch c {
	case Obstacle:
		return ObstacleMarker
	case Start:
		return StartMarker
	default:
		return OpenMarker
	}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	switch c {
	case Open:
		return "open"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Coord is a (row, column) position. It is comparable and usable as a map key.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Grid is a rectangular table of cells. It is immutable once built;
// WithObstacle returns a new Grid instead of editing the receiver.
// cells is stored row-major: cells[row*cols+col].
type Grid struct {
	rows, cols int
	cells      []Cell
}
