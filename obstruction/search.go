package obstruction

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpatrol/grid"
	"github.com/katalvlaran/lvpatrol/patrol"
)

// Baseline runs the guard once on the unmodified grid.
// A Looped result means the input itself is degenerate.
func Baseline(g *grid.Grid, start grid.Coord) (*patrol.Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	res, err := patrol.Simulate(g, start)
	if err != nil {
		return nil, fmt.Errorf("obstruction: baseline: %w", err)
	}
	return res, nil
}

// Count returns how many cells of visited, excluding start, make the guard
// loop once turned into an obstacle.
func Count(ctx context.Context, g *grid.Grid, start grid.Coord, visited patrol.VisitedSet, opts ...Option) (int, error) {
	cells, err := Candidates(ctx, g, start, visited, opts...)
	if err != nil {
		return 0, err
	}
	return len(cells), nil
}

// Candidates returns the loop-inducing cells of visited in row-major order.
// The start cell is never evaluated. Each candidate is simulated on its own
// derived grid; g is only read.
func Candidates(ctx context.Context, g *grid.Grid, start grid.Coord, visited patrol.VisitedSet, opts ...Option) ([]grid.Coord, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	cells := visited.Sorted()
	hits := make([]bool, len(cells))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	evaluated := 0
	for i, c := range cells {
		if c == start {
			continue
		}
		if egCtx.Err() != nil {
			break
		}
		evaluated++
		i, c := i, c
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			looped, err := loopsWith(g, start, c)
			if err != nil {
				return err
			}
			if looped {
				hits[i] = true
				o.Logger.Debug("loop-inducing obstruction", zap.Stringer("cell", c))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]grid.Coord, 0, len(cells))
	for i, hit := range hits {
		if hit {
			out = append(out, cells[i])
		}
	}
	o.Logger.Info("obstruction search done",
		zap.Int("candidates", evaluated),
		zap.Int("loops", len(out)),
		zap.Int("workers", o.Workers),
	)

	return out, nil
}

// loopsWith reports whether the patrol from start loops once c is an obstacle.
func loopsWith(g *grid.Grid, start, c grid.Coord) (bool, error) {
	derived, err := g.WithObstacle(c.Row, c.Col)
	if err != nil {
		return false, fmt.Errorf("obstruction: candidate %s: %w", c, err)
	}
	res, err := patrol.Simulate(derived, start, patrol.WithoutVisited())
	if err != nil {
		return false, fmt.Errorf("obstruction: candidate %s: %w", c, err)
	}
	return res.Looped(), nil
}

// Solve locates the start marker in g, runs the baseline and counts
// loop-inducing obstructions. When the baseline itself loops, Solve returns
// the partial Report together with ErrDegenerateBaseline.
func Solve(ctx context.Context, g *grid.Grid, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	start, err := g.FindStart(grid.Start)
	if err != nil {
		return nil, fmt.Errorf("obstruction: %w", err)
	}

	base, err := Baseline(g, start)
	if err != nil {
		return nil, err
	}
	rep := &Report{
		Start:          start,
		Visited:        base.Visited.Len(),
		BaselineLooped: base.Looped(),
	}
	if rep.BaselineLooped {
		return rep, ErrDegenerateBaseline
	}

	n, err := Count(ctx, g, start, base.Visited, opts...)
	if err != nil {
		return nil, err
	}
	rep.Obstructions = n

	return rep, nil
}
