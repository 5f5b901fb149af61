package core

import "math"

// CoordinateMapper converts between board coordinates and the external
// (tilemap) coordinate space. The offset is fixed when the board is built.
type CoordinateMapper struct {
	offset Coordinate
}

// NewCoordinateMapper returns a mapper whose board origin sits at offset in
// the external space.
func NewCoordinateMapper(offset Coordinate) CoordinateMapper {
	return CoordinateMapper{offset: offset}
}

func (m CoordinateMapper) Offset() Coordinate { return m.offset }

// ToExternal maps a board coordinate to the external space.
func (m CoordinateMapper) ToExternal(c Coordinate) Coordinate {
	return c.Add(m.offset)
}

// ToInternal maps an external coordinate back to the board.
func (m CoordinateMapper) ToInternal(e Coordinate) Coordinate {
	return e.Sub(m.offset)
}

// CellCenter returns the world position of a board cell, given the size of
// one tile and the offset from a tile's corner to where units are drawn.
func (m CoordinateMapper) CellCenter(c Coordinate, cellSize, renderOffsetX, renderOffsetY float64) (float64, float64) {
	e := m.ToExternal(c)
	return float64(e.X)*cellSize + renderOffsetX, float64(e.Y)*cellSize + renderOffsetY
}

// WorldToCell returns the board cell containing a world position. The result
// may be out of bounds; callers check it against the board. A cellSize that is
// not positive is treated as 1.
func (m CoordinateMapper) WorldToCell(x, y, cellSize float64) Coordinate {
	if !(cellSize > 0) || math.IsInf(cellSize, 1) {
		cellSize = 1
	}
	e := Coordinate{
		X: int(math.Floor(x / cellSize)),
		Y: int(math.Floor(y / cellSize)),
	}
	return m.ToInternal(e)
}
