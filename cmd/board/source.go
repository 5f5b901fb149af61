package main

import (
	"fmt"

	"github.com/savanna-tactics/boardcore/internal/config"
	"github.com/savanna-tactics/boardcore/internal/game/core"
	"github.com/savanna-tactics/boardcore/internal/game/mapgen"
	"github.com/savanna-tactics/boardcore/internal/game/session"
)

// boardSource maps the board section of the config to a session source.
func boardSource(b config.BoardConfig) (session.BoardSource, error) {
	switch b.Source {
	case config.SourcePredefined:
		return session.FromPredefined(), nil
	case config.SourceLayout:
		return session.FromLayout(b.Layout), nil
	case config.SourcePainted:
		origin := core.Coordinate{X: b.Painted.OriginX, Y: b.Painted.OriginY}
		layers := core.ParsePaintedRows(origin, b.Painted.Terrain, b.Painted.Resource)
		return session.FromPainted(layers, core.DefaultTileLookup()), nil
	case config.SourceGenerated:
		g := b.Generator
		return session.FromGenerated(mapgen.LayoutConfig{
			Width:         g.Width,
			Height:        g.Height,
			Seed:          g.Seed,
			VoidThreshold: g.VoidThreshold,
			Octaves:       g.Octaves,
			Frequency:     g.Frequency,
		}), nil
	default:
		return nil, fmt.Errorf("unknown board source %q", b.Source)
	}
}

// headquarters returns the configured HQ cell, or nil to use the center.
func headquarters(h config.HeadquartersConfig) *core.Coordinate {
	if !h.Enabled {
		return nil
	}
	return &core.Coordinate{X: h.X, Y: h.Y}
}
