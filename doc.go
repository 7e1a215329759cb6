// Package lvpatrol simulates a guard patrolling a 2D lab map and searches
// for the cells where one extra obstacle traps the guard in a loop.
//
// The guard follows a fixed rule: walk straight ahead, turn 90° clockwise
// in place when the next cell is an obstacle, and stop once the next cell
// lies outside the map.
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/        immutable cell store, bounded lookup, copy-on-write WithObstacle
//	patrol/      Heading, State, VisitedSet, LoopStateSet and Simulate
//	obstruction/ baseline run, loop-inducing obstruction search, Solve
//
// Quick ASCII example (guard boxed in, rotates in place forever):
//
//	.#.
//	#^#
//	.#.
//
//	go install github.com/katalvlaran/lvpatrol/cmd/lvpatrol@latest
package lvpatrol
