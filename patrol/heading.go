package patrol

import "fmt"

// Heading is one of the four cardinal orientations.
// Values are ordered clockwise so that turning is a modular increment.
type Heading uint8

const (
	Up Heading = iota
	Right
	Down
	Left
)

// headingCount is the number of distinct headings.
const headingCount = 4

// offsets holds the (dRow, dCol) unit vector per heading.
var offsets = [headingCount][2]int{
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
}

// Valid reports whether h is one of Up, Right, Down, Left.
func (h Heading) Valid() bool {
	return h < headingCount
}

// Offset returns the unit step for h as (dRow, dCol).
// Complexity: O(1).
func (h Heading) Offset() (dRow, dCol int) {
	o := offsets[h%headingCount]
	return o[0], o[1]
}

// TurnClockwise returns the heading after a 90° clockwise turn:
// Up→Right→Down→Left→Up.
func (h Heading) TurnClockwise() Heading {
	return (h + 1) % headingCount
}

// String implements fmt.Stringer.
func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("heading(%d)", uint8(h))
	}
}
