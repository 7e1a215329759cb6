// Package patrol simulates a guard walking a grid.Grid under a fixed rule:
// advance straight ahead, turn 90° clockwise in place when the next cell is
// an obstacle, and stop once the next cell lies outside the grid.
//
// What:
//
//   - Heading: Up, Right, Down, Left with TurnClockwise and Offset.
//   - State: the (row, col, heading) triple; equal iff all three match.
//   - VisitedSet: distinct cells the guard stood on (heading ignored).
//   - LoopStateSet: distinct State triples seen during one run.
//   - Simulate: drives a State until it exits (Exited) or a triple repeats
//     (Looped).
//
// Termination:
//
//	The reachable state space is bounded by Rows×Cols×4 (see StateBound), so
//	every run either exits or repeats a state after at most StateBound(g)
//	recorded states. A start boxed in on all four sides rotates in place and
//	loops after exactly four recorded states.
//
// Options:
//
//   - WithHeading(h)   initial heading (default Up).
//   - WithOnStep(fn)   hook called with every recorded State; an error aborts.
//   - WithoutVisited() skip VisitedSet bookkeeping when only the loop flag matters.
//
// Errors:
//
//   - ErrGridNil           the grid pointer is nil.
//   - ErrStartOutOfBounds  the start coordinate lies outside the grid.
//   - ErrStartBlocked      the start cell is an obstacle.
//   - ErrInvalidHeading    WithHeading received an unknown value.
//   - hook errors          propagated from OnStep, wrapped.
package patrol
