package patrol_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpatrol/grid"
	"github.com/katalvlaran/lvpatrol/patrol"
)

const lab = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// mustLab parses text and returns the grid and its start cell.
func mustLab(t *testing.T, text string) (*grid.Grid, grid.Coord) {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)
	start, err := g.FindStart(grid.Start)
	require.NoError(t, err)
	return g, start
}

// TestSimulate_Lab checks the canonical walk: 41 cells, normal exit.
func TestSimulate_Lab(t *testing.T) {
	g, start := mustLab(t, lab)

	res, err := patrol.Simulate(g, start)
	require.NoError(t, err)
	assert.Equal(t, patrol.Exited, res.Outcome)
	assert.False(t, res.Looped())
	assert.Equal(t, 41, res.Visited.Len())
	assert.True(t, res.Visited.Contains(start))
	// The guard leaves through the bottom edge at column 7.
	assert.Equal(t, patrol.State{Row: 9, Col: 7, Heading: patrol.Down}, res.Final)
	assert.LessOrEqual(t, res.Steps, patrol.StateBound(g))
}

// TestSimulate_Deterministic runs the same walk twice and expects identical results.
func TestSimulate_Deterministic(t *testing.T) {
	g, start := mustLab(t, lab)

	a, err := patrol.Simulate(g, start)
	require.NoError(t, err)
	b, err := patrol.Simulate(g, start)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestSimulate_NoObstacles walks straight up and out.
func TestSimulate_NoObstacles(t *testing.T) {
	g, start := mustLab(t, ".....\n.....\n.....\n..^..\n.....\n")

	res, err := patrol.Simulate(g, start)
	require.NoError(t, err)
	assert.Equal(t, patrol.Exited, res.Outcome)
	assert.Equal(t, 4, res.Visited.Len()) // rows 3,2,1,0 in column 2
	for r := 0; r <= 3; r++ {
		assert.True(t, res.Visited.Contains(grid.Coord{Row: r, Col: 2}))
	}
}

// TestSimulate_BoxedIn rotates in place and loops after four recorded states.
func TestSimulate_BoxedIn(t *testing.T) {
	g, start := mustLab(t, ".#.\n#^#\n.#.\n")

	var seen []patrol.State
	res, err := patrol.Simulate(g, start, patrol.WithOnStep(func(s patrol.State) error {
		seen = append(seen, s)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, patrol.Looped, res.Outcome)
	assert.Equal(t, 4, res.Steps)
	assert.Equal(t, 1, res.Visited.Len())
	assert.Equal(t, []patrol.State{
		{Row: 1, Col: 1, Heading: patrol.Up},
		{Row: 1, Col: 1, Heading: patrol.Right},
		{Row: 1, Col: 1, Heading: patrol.Down},
		{Row: 1, Col: 1, Heading: patrol.Left},
	}, seen)
}

// TestSimulate_Loop detects a rectangular circuit.
func TestSimulate_Loop(t *testing.T) {
	text := ".#...\n....#\n.^...\n#....\n...#.\n"
	g, start := mustLab(t, text)

	res, err := patrol.Simulate(g, start)
	require.NoError(t, err)
	assert.True(t, res.Looped())
	assert.LessOrEqual(t, res.Steps, patrol.StateBound(g))
}

// TestSimulate_WithHeading starts facing right.
func TestSimulate_WithHeading(t *testing.T) {
	g, start := mustLab(t, "^..\n...\n")

	res, err := patrol.Simulate(g, start, patrol.WithHeading(patrol.Right))
	require.NoError(t, err)
	assert.Equal(t, patrol.Exited, res.Outcome)
	assert.Equal(t, 3, res.Visited.Len())
	assert.Equal(t, patrol.State{Row: 0, Col: 2, Heading: patrol.Right}, res.Final)
}

// TestSimulate_WithoutVisited returns only the outcome.
func TestSimulate_WithoutVisited(t *testing.T) {
	g, start := mustLab(t, lab)

	res, err := patrol.Simulate(g, start, patrol.WithoutVisited())
	require.NoError(t, err)
	assert.Nil(t, res.Visited)
	assert.Equal(t, patrol.Exited, res.Outcome)
}

// TestSimulate_Errors covers invalid inputs and hook aborts.
func TestSimulate_Errors(t *testing.T) {
	g, start := mustLab(t, "#.\n.^\n")
	errStop := errors.New("stop")

	cases := []struct {
		name  string
		g     *grid.Grid
		start grid.Coord
		opts  []patrol.Option
		err   error
	}{
		{"NilGrid", nil, start, nil, patrol.ErrGridNil},
		{"OutOfBounds", g, grid.Coord{Row: 5, Col: 0}, nil, patrol.ErrStartOutOfBounds},
		{"Blocked", g, grid.Coord{Row: 0, Col: 0}, nil, patrol.ErrStartBlocked},
		{"BadHeading", g, start, []patrol.Option{patrol.WithHeading(9)}, patrol.ErrInvalidHeading},
		{"HookAbort", g, start, []patrol.Option{patrol.WithOnStep(func(patrol.State) error { return errStop })}, errStop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := patrol.Simulate(tc.g, tc.start, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, res)
		})
	}
}
