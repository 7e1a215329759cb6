package patrol

import (
	"fmt"

	"github.com/katalvlaran/lvpatrol/grid"
)

// StateBound returns Rows×Cols×4, the number of distinct States a guard can
// occupy on g. No run records more than this many states.
func StateBound(g *grid.Grid) int {
	return g.Rows() * g.Cols() * headingCount
}

// Simulate walks a guard across g from start and reports how the walk ended.
//
// Each iteration first checks the current State against the run's
// LoopStateSet; a repeat ends the run as Looped. Otherwise the State is
// recorded and the guard looks at the next cell along its heading:
//   - outside the grid → Exited
//   - Obstacle         → turn clockwise in place
//   - anything else    → step forward
//
// Returns ErrGridNil, ErrStartOutOfBounds, ErrStartBlocked or
// ErrInvalidHeading on bad input, or the wrapped OnStep error if the hook aborts.
// Complexity: O(R×C) time, O(R×C) memory.
func Simulate(g *grid.Grid, start grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}

	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}
	if !sopts.Heading.Valid() {
		return nil, ErrInvalidHeading
	}

	cell, ok := g.Lookup(start.Row, start.Col)
	if !ok {
		return nil, ErrStartOutOfBounds
	}
	if cell == grid.Obstacle {
		return nil, ErrStartBlocked
	}

	res := &Result{Outcome: Running}
	if sopts.TrackVisited {
		res.Visited = make(VisitedSet)
	}
	seen := NewLoopStateSet(g.Rows(), g.Cols())
	cur := State{Row: start.Row, Col: start.Col, Heading: sopts.Heading}

	for res.Outcome == Running {
		if !seen.Add(cur) {
			res.Outcome = Looped
			break
		}
		if res.Visited != nil {
			res.Visited.Add(cur.Coord())
		}
		if sopts.OnStep != nil {
			if err := sopts.OnStep(cur); err != nil {
				return nil, fmt.Errorf("patrol: OnStep at %s: %w", cur, err)
			}
		}

		dr, dc := cur.Heading.Offset()
		next, ok := g.Lookup(cur.Row+dr, cur.Col+dc)
		switch {
		case !ok:
			res.Outcome = Exited
		case next == grid.Obstacle:
			cur.Heading = cur.Heading.TurnClockwise()
		default:
			cur.Row += dr
			cur.Col += dc
		}
	}

	res.Steps = seen.Len()
	res.Final = cur

	return res, nil
}
