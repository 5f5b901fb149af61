package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savanna-tactics/boardcore/internal/config"
	"github.com/savanna-tactics/boardcore/internal/game/core"
	"github.com/savanna-tactics/boardcore/internal/testutil"
)

func testConfig(board config.BoardConfig) *config.Config {
	if board.Render.CellSize == 0 {
		board.Render = config.RenderConfig{CellSize: 1, OffsetX: 0.5, OffsetY: 0.5}
	}
	return &config.Config{
		Log:   config.LogConfig{Level: "info", Format: "console"},
		Board: board,
	}
}

func TestBoardSource(t *testing.T) {
	tests := []struct {
		name   string
		board  config.BoardConfig
		width  int
		height int
	}{
		{"predefined", config.BoardConfig{Source: config.SourcePredefined}, 21, 16},
		{"layout", config.BoardConfig{Source: config.SourceLayout, Layout: [][]int{{1, 2}, {3, 4}, {5, 6}}}, 2, 3},
		{"painted", config.BoardConfig{
			Source: config.SourcePainted,
			Painted: config.PaintedConfig{
				OriginX:  3,
				Terrain:  []string{"NNNN"},
				Resource: []string{".2.."},
			},
		}, 4, 1},
		{"generated", config.BoardConfig{
			Source: config.SourceGenerated,
			Generator: config.GeneratorConfig{
				Width: 9, Height: 7, Seed: 11, VoidThreshold: 0.3, Octaves: 3, Frequency: 0.15,
			},
		}, 9, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := boardSource(tt.board)
			require.NoError(t, err)

			b, err := src(nil, testutil.NopLogger())
			require.NoError(t, err)
			assert.Equal(t, tt.width, b.W)
			assert.Equal(t, tt.height, b.H)
		})
	}

	_, err := boardSource(config.BoardConfig{Source: "tiled"})
	assert.Error(t, err)
}

func TestHeadquarters(t *testing.T) {
	assert.Nil(t, headquarters(config.HeadquartersConfig{X: 3, Y: 4}))
	assert.Equal(t, &core.Coordinate{X: 3, Y: 4}, headquarters(config.HeadquartersConfig{Enabled: true, X: 3, Y: 4}))
}

func TestRun(t *testing.T) {
	cfg := testConfig(config.BoardConfig{
		Source:       config.SourceLayout,
		Layout:       [][]int{{1, 1, -1, 1}},
		Headquarters: config.HeadquartersConfig{Enabled: true, X: 0, Y: 0},
	})

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out, true))

	text := out.String()
	assert.Contains(t, text, "Session ")
	assert.Contains(t, text, " 0 · ·   · \n")
	assert.Contains(t, text, " 0   0  1     -\n")
	assert.Contains(t, text, "Board: 4 x 1, 3 passable cells\n")
	assert.Contains(t, text, "HQ: (0,0), external (0,0), world (0.50, 0.50)\n")
	assert.Contains(t, text, "Farthest reachable cell: 1 steps\n")
	assert.Contains(t, text, "  none    3 cells, 3 resources\n")
	assert.Contains(t, text, "  cats    0 cells, 0 resources\n")
}

func TestRun_Predefined(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(testConfig(config.BoardConfig{Source: config.SourcePredefined}), &out, false))

	assert.Contains(t, out.String(), "Board: 21 x 16")
	assert.Contains(t, out.String(), "HQ: (10,8)")
}

func TestRun_InvalidHeadquarters(t *testing.T) {
	cfg := testConfig(config.BoardConfig{
		Source:       config.SourceLayout,
		Layout:       [][]int{{1, -1}},
		Headquarters: config.HeadquartersConfig{Enabled: true, X: 1, Y: 0},
	})

	err := run(cfg, &bytes.Buffer{}, false)
	assert.ErrorIs(t, err, core.ErrInvalidSource)
}
