package session

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/savanna-tactics/boardcore/internal/game/core"
	"github.com/savanna-tactics/boardcore/internal/game/mapgen"
)

// BoardSource builds a board. Diagnostics raised while building go to p.
type BoardSource func(p core.EventPublisher, logger zerolog.Logger) (*core.Board, error)

// FromLayout builds the board from a resource matrix, top row first.
func FromLayout(layout [][]int) BoardSource {
	return func(p core.EventPublisher, logger zerolog.Logger) (*core.Board, error) {
		return core.NewBoardFromLayout(layout, logger)
	}
}

// FromPredefined builds the shipped 21x16 map.
func FromPredefined() BoardSource {
	return FromLayout(core.PredefinedLayout())
}

// FromPainted imports painted tile layers. Unknown markers are published to
// the session bus as they are found.
func FromPainted(src core.PaintedSource, lookup core.TileLookup) BoardSource {
	return func(p core.EventPublisher, logger zerolog.Logger) (*core.Board, error) {
		return core.NewBoardFromPaintedWithPublisher(src, lookup, logger, p)
	}
}

// FromGenerated builds a board from a noise-generated layout.
func FromGenerated(cfg mapgen.LayoutConfig) BoardSource {
	return func(p core.EventPublisher, logger zerolog.Logger) (*core.Board, error) {
		layout, err := mapgen.NewGenerator(cfg, logger).Generate()
		if err != nil {
			return nil, fmt.Errorf("generating layout: %w", err)
		}
		return core.NewBoardFromLayout(layout.Rows, logger)
	}
}
