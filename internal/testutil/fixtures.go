package testutil

import (
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/savanna-tactics/boardcore/internal/game/core"
)

// CreateTestBoard creates a fully passable board where every cell holds
// resource.
func CreateTestBoard(t *testing.T, width, height, resource int) *core.Board {
	t.Helper()
	layout := make([][]int, height)
	for i := range layout {
		layout[i] = make([]int, width)
		for j := range layout[i] {
			layout[i][j] = resource
		}
	}
	return CreateTestBoardFromLayout(t, layout)
}

// CreateTestBoardFromLayout builds a board from layout and fails the test on
// error.
func CreateTestBoardFromLayout(t *testing.T, layout [][]int) *core.Board {
	t.Helper()
	board, err := core.NewBoardFromLayout(layout, zerolog.Nop())
	require.NoError(t, err)
	return board
}

// CreateTestUnits creates n living units per playable faction, lined up on
// row y starting at x = 0. Cats come first.
func CreateTestUnits(n, y int) []*StubUnit {
	units := make([]*StubUnit, 0, n*len(core.PlayableFactions))
	x := 0
	for _, f := range core.PlayableFactions {
		for i := 0; i < n; i++ {
			units = append(units, NewStubUnit(f.String()+"-"+strconv.Itoa(i), f, core.Coordinate{X: x, Y: y}))
			x++
		}
	}
	return units
}

// WallLayout is a 5x3 board split by a void column with a single gap at the
// top, so the far side is reached only by a detour.
//
//	1 1 1 1 1
//	1 1 X 1 1
//	1 1 X 1 1
func WallLayout() [][]int {
	return [][]int{
		{1, 1, 1, 1, 1},
		{1, 1, -1, 1, 1},
		{1, 1, -1, 1, 1},
	}
}
