package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpatrol/obstruction"
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

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolve_Stdin(t *testing.T) {
	out, err := run(t, lab, "solve", "--workers", "2", "-")
	require.NoError(t, err)
	assert.Equal(t, "part A: 41\npart B: 6\n", out)
}

func TestSolve_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(lab), 0o600))

	out, err := run(t, "", "solve", path)
	require.NoError(t, err)
	assert.Equal(t, "part A: 41\npart B: 6\n", out)
}

func TestSolve_Degenerate(t *testing.T) {
	out, err := run(t, ".#...\n....#\n.^...\n#....\n...#.\n", "solve")
	assert.ErrorIs(t, err, obstruction.ErrDegenerateBaseline)
	assert.Contains(t, out, "(loop)")
}

func TestWalk(t *testing.T) {
	out, err := run(t, lab, "walk")
	require.NoError(t, err)
	assert.Equal(t, "part A: 41\noutcome: exited\n", out)
}

func TestWalk_MissingStart(t *testing.T) {
	_, err := run(t, "...\n...\n", "walk")
	assert.Error(t, err)
}
