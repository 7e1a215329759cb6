package obstruction

import (
	"errors"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvpatrol/grid"
)

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed in.
	ErrGridNil = errors.New("obstruction: grid is nil")

	// ErrDegenerateBaseline indicates the unmodified grid already traps the
	// guard, so an obstruction count would be meaningless.
	ErrDegenerateBaseline = errors.New("obstruction: baseline patrol loops")
)

// Option configures a search.
type Option func(*Options)

// Options holds configurable parameters for Candidates, Count and Solve.
type Options struct {
	// Workers bounds how many candidate runs execute at once.
	// 1 runs sequentially. Default is runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives per-hit debug lines and a summary. Default is a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns Options with GOMAXPROCS workers and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zap.NewNop(),
	}
}

// WithWorkers returns an Option that bounds parallel candidate runs.
// n ≤ 0 keeps the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithLogger returns an Option that installs l. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Report summarises a full solve.
type Report struct {
	// Start is the guard's start cell.
	Start grid.Coord

	// Visited is the number of distinct cells on the baseline patrol (Part A).
	Visited int

	// Obstructions is the number of loop-inducing cells (Part B).
	// Zero when BaselineLooped is true.
	Obstructions int

	// BaselineLooped reports that the unmodified grid already loops.
	BaselineLooped bool
}
