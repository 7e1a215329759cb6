package patrol

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvpatrol/grid"
)

// State is the guard's full configuration. It is comparable; two States are
// equal iff Row, Col and Heading all match.
type State struct {
	Row, Col int
	Heading  Heading
}

// Coord drops the heading and returns the guard's cell.
func (s State) Coord() grid.Coord {
	return grid.Coord{Row: s.Row, Col: s.Col}
}

// String formats the state as "row,col/heading".
func (s State) String() string {
	return fmt.Sprintf("%d,%d/%s", s.Row, s.Col, s.Heading)
}

// VisitedSet holds the distinct cells a guard stood on, heading ignored.
type VisitedSet map[grid.Coord]struct{}

// Add records c.
func (v VisitedSet) Add(c grid.Coord) { v[c] = struct{}{} }

// Contains reports whether c was recorded.
func (v VisitedSet) Contains(c grid.Coord) bool {
	_, ok := v[c]
	return ok
}

// Len returns the number of distinct cells.
func (v VisitedSet) Len() int { return len(v) }

// Sorted returns the cells in row-major order.
func (v VisitedSet) Sorted() []grid.Coord {
	out := make([]grid.Coord, 0, len(v))
	for c := range v {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// LoopStateSet records the State triples seen during a single run.
// It is a dense bitset: one nibble per cell, one bit per heading.
// A LoopStateSet belongs to exactly one run and is not safe for concurrent use.
type LoopStateSet struct {
	cols int
	bits []uint8
	n    int
}

// NewLoopStateSet returns an empty set sized for a rows×cols grid.
func NewLoopStateSet(rows, cols int) *LoopStateSet {
	return &LoopStateSet{cols: cols, bits: make([]uint8, rows*cols)}
}

// Add records s and reports whether it was newly added.
// s must lie inside the grid the set was sized for.
func (l *LoopStateSet) Add(s State) bool {
	i := s.Row*l.cols + s.Col
	mask := uint8(1) << s.Heading
	if l.bits[i]&mask != 0 {
		return false
	}
	l.bits[i] |= mask
	l.n++
	return true
}

// Contains reports whether s was recorded.
func (l *LoopStateSet) Contains(s State) bool {
	return l.bits[s.Row*l.cols+s.Col]&(uint8(1)<<s.Heading) != 0
}

// Len returns the number of distinct states recorded.
func (l *LoopStateSet) Len() int { return l.n }
