// Package patrol defines the options, outcome and result types for Simulate.
package patrol

import "errors"

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to Simulate.
	ErrGridNil = errors.New("patrol: grid is nil")

	// ErrStartOutOfBounds indicates that the start coordinate is outside the grid.
	ErrStartOutOfBounds = errors.New("patrol: start out of bounds")

	// ErrStartBlocked indicates that the start cell is an obstacle.
	ErrStartBlocked = errors.New("patrol: start cell is an obstacle")

	// ErrInvalidHeading indicates an unknown Heading value.
	ErrInvalidHeading = errors.New("patrol: invalid heading")
)

// Outcome is the simulator's state: Running until one of the terminal states.
type Outcome int

const (
	Running Outcome = iota // Running: no terminal condition reached yet.
	Exited                 // Exited: the next cell was outside the grid.
	Looped                 // Looped: a State triple repeated.
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Exited:
		return "exited"
	case Looped:
		return "looped"
	default:
		return "unknown"
	}
}

// Option configures optional behavior of Simulate.
type Option func(*Options)

// Options holds configurable parameters for a single simulation run.
type Options struct {
	// Heading is the guard's initial heading. Default is Up.
	Heading Heading

	// OnStep, if non-nil, is invoked with every State just after it is
	// recorded and before the move is applied. Returning an error aborts the run.
	OnStep func(s State) error

	// TrackVisited controls VisitedSet bookkeeping. Default is true.
	TrackVisited bool
}

// DefaultOptions returns Options with:
//   - Heading Up
//   - no OnStep hook
//   - VisitedSet tracking enabled
func DefaultOptions() Options {
	return Options{
		Heading:      Up,
		OnStep:       nil,
		TrackVisited: true,
	}
}

// WithHeading returns an Option that sets the guard's initial heading.
func WithHeading(h Heading) Option {
	return func(o *Options) {
		o.Heading = h
	}
}

// WithOnStep returns an Option that installs fn as a per-state hook.
func WithOnStep(fn func(s State) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithoutVisited returns an Option that skips VisitedSet bookkeeping.
// Result.Visited is nil when set.
func WithoutVisited() Option {
	return func(o *Options) {
		o.TrackVisited = false
	}
}

// Result captures the outcome of one simulation run.
type Result struct {
	// Outcome is Exited or Looped.
	Outcome Outcome

	// Visited holds every distinct cell recorded, including the last one
	// before the exit. Nil when WithoutVisited was used.
	Visited VisitedSet

	// Steps is the number of distinct States recorded before termination.
	Steps int

	// Final is the last State recorded: the cell the guard exits from, or
	// the repeated State when the run looped.
	Final State
}

// Looped reports whether the run terminated through loop detection.
func (r *Result) Looped() bool {
	return r.Outcome == Looped
}
