package core

import (
	"github.com/rs/zerolog"
)

// PaintedSource is a two-layer tile map painted outside the game, addressed
// in external coordinates. The terrain layer decides void and owner, the
// resource layer decides the resource tier.
type PaintedSource interface {
	// Bounds returns the external coordinate of the bottom-left painted cell
	// and the size of the smallest rectangle holding every terrain tile.
	Bounds() (origin Coordinate, width, height int)
	TerrainAt(e Coordinate) (marker string, ok bool)
	ResourceAt(e Coordinate) (marker string, ok bool)
}

// TileLookup maps painted markers to cell values.
type TileLookup struct {
	Terrain  map[string]Faction
	Resource map[string]int
}

// DefaultTileLookup knows the neutral, cat and hyena terrain tiles and the
// three resource tiers above the base value of 1.
func DefaultTileLookup() TileLookup {
	return TileLookup{
		Terrain: map[string]Faction{
			"N": FactionNone,
			"C": FactionCats,
			"H": FactionHyenas,
		},
		Resource: map[string]int{
			"2": 2,
			"3": 3,
			"4": 4,
		},
	}
}

const defaultResourceValue = 1

// NewBoardFromPainted builds a board covering the source's bounds. The board
// offset is the bounds origin, so board (0,0) is the bottom-left painted cell.
//
// Unknown markers are logged at error level, published as TileMarkerUnknown
// and imported as a neutral cell with resource value 1.
func NewBoardFromPainted(src PaintedSource, lookup TileLookup, logger zerolog.Logger) (*Board, error) {
	return newBoardFromPainted(src, lookup, logger, nil)
}

// NewBoardFromPaintedWithPublisher is NewBoardFromPainted with import
// diagnostics sent to p. p also becomes the board's publisher.
func NewBoardFromPaintedWithPublisher(src PaintedSource, lookup TileLookup, logger zerolog.Logger, p EventPublisher) (*Board, error) {
	return newBoardFromPainted(src, lookup, logger, p)
}

func newBoardFromPainted(src PaintedSource, lookup TileLookup, logger zerolog.Logger, p EventPublisher) (*Board, error) {
	origin, w, h := src.Bounds()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyPaintedSource
	}

	b := newBoard(w, h, origin, logger)
	b.publisher = p

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Coordinate{X: x, Y: y}
			e := b.ToExternalSpace(c)

			terrain, ok := src.TerrainAt(e)
			if !ok {
				b.C[b.Idx(x, y)] = newCell(VoidResource, FactionNone)
				continue
			}

			owner := b.factionForMarker(lookup, e, terrain)
			resource := b.resourceForMarker(lookup, e, src)
			b.C[b.Idx(x, y)] = newCell(resource, owner)
		}
	}

	b.logger.Info().
		Int("width", w).
		Int("height", h).
		Str("offset", b.Offset.String()).
		Msg("Board initialized from painted source")
	return b, nil
}

func (b *Board) factionForMarker(lookup TileLookup, e Coordinate, marker string) Faction {
	if f, ok := lookup.Terrain[marker]; ok {
		return f
	}
	b.logger.Error().
		Str("tile", e.String()).
		Str("marker", marker).
		Msg("Unknown terrain tile, defaulting to neutral")
	publish(b.publisher, TileMarkerUnknown{Coord: e, Layer: TerrainLayer, Marker: marker})
	return FactionNone
}

func (b *Board) resourceForMarker(lookup TileLookup, e Coordinate, src PaintedSource) int {
	marker, ok := src.ResourceAt(e)
	if !ok {
		return defaultResourceValue
	}
	if v, ok := lookup.Resource[marker]; ok {
		return v
	}
	b.logger.Error().
		Str("tile", e.String()).
		Str("marker", marker).
		Msg("Unknown resource tile, defaulting to base resource value")
	publish(b.publisher, TileMarkerUnknown{Coord: e, Layer: ResourceLayer, Marker: marker})
	return defaultResourceValue
}

// PaintedLayers is an in-memory PaintedSource.
type PaintedLayers struct {
	terrain  map[Coordinate]string
	resource map[Coordinate]string
}

// NewPaintedLayers returns empty terrain and resource layers.
func NewPaintedLayers() *PaintedLayers {
	return &PaintedLayers{
		terrain:  make(map[Coordinate]string),
		resource: make(map[Coordinate]string),
	}
}

// ParsePaintedRows reads layers drawn as text, one character per tile and
// rows listed top to bottom. '.' and ' ' leave a tile unpainted. The bottom
// row starts at origin in external coordinates.
func ParsePaintedRows(origin Coordinate, terrainRows, resourceRows []string) *PaintedLayers {
	p := NewPaintedLayers()
	paintRows(origin, terrainRows, p.SetTerrain)
	paintRows(origin, resourceRows, p.SetResource)
	return p
}

func paintRows(origin Coordinate, rows []string, set func(Coordinate, string)) {
	for i, row := range rows {
		y := origin.Y + len(rows) - 1 - i
		for x, r := range []rune(row) {
			if r == '.' || r == ' ' {
				continue
			}
			set(Coordinate{X: origin.X + x, Y: y}, string(r))
		}
	}
}

func (p *PaintedLayers) SetTerrain(e Coordinate, marker string)  { p.terrain[e] = marker }
func (p *PaintedLayers) SetResource(e Coordinate, marker string) { p.resource[e] = marker }

func (p *PaintedLayers) TerrainAt(e Coordinate) (string, bool) {
	m, ok := p.terrain[e]
	return m, ok
}

func (p *PaintedLayers) ResourceAt(e Coordinate) (string, bool) {
	m, ok := p.resource[e]
	return m, ok
}

// Bounds compresses to the terrain layer; resource tiles outside it are ignored.
func (p *PaintedLayers) Bounds() (Coordinate, int, int) {
	if len(p.terrain) == 0 {
		return Coordinate{}, 0, 0
	}
	first := true
	var lo, hi Coordinate
	for c := range p.terrain {
		if first {
			lo, hi = c, c
			first = false
			continue
		}
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return lo, hi.X - lo.X + 1, hi.Y - lo.Y + 1
}
