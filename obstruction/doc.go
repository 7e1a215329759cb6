// Package obstruction counts the cells where one extra obstacle traps the
// guard in an endless patrol.
//
// What:
//
//   - Baseline: one patrol.Simulate run on the unmodified grid; its VisitedSet
//     is the candidate pool.
//   - Candidates / Count: for every visited cell except the start, derive
//     grid.WithObstacle and re-simulate; the cells whose run Looped form the
//     candidate set.
//   - Solve: FindStart + Baseline + Count in one call, reporting both answers.
//
// Only cells on the baseline path can change the walk, so the search is
// restricted to them. Each candidate run owns its derived grid and its
// LoopStateSet and reads nothing mutable from any other run, so runs are
// evaluated in parallel with golang.org/x/sync/errgroup.
//
// Complexity:
//
//   - Count: O(V × R×C) time (V = visited cells), O(W × R×C) memory for W workers.
//
// Options:
//
//   - WithWorkers(n)  parallel candidate runs; n ≤ 0 uses runtime.GOMAXPROCS(0).
//   - WithLogger(l)   zap logger for per-hit debug lines and a summary.
//
// Errors:
//
//   - ErrGridNil             grid pointer is nil.
//   - ErrDegenerateBaseline  the unmodified grid already loops.
//   - grid.ErrMissingStart   Solve found no start marker.
//   - context errors         ctx was cancelled between candidates.
package obstruction
