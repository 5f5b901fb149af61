package core

import (
	"github.com/rs/zerolog"
)

// Board is the authoritative store of cell state. Cells are kept row-major in
// C; row 0 is the bottom row of the map.
type Board struct {
	W, H   int
	C      []Cell // length = W*H (row-major)
	Offset Coordinate

	publisher EventPublisher
	logger    zerolog.Logger
}

func newBoard(w, h int, offset Coordinate, logger zerolog.Logger) *Board {
	return &Board{
		W:      w,
		H:      h,
		C:      make([]Cell, w*h),
		Offset: offset,
		logger: logger.With().Str("component", "board").Logger(),
	}
}

// NewBoardFromLayout builds a board from integer rows listed top to bottom.
// -1 marks a void cell; any other value is the cell's resource value. All
// cells start neutral and the offset is the identity.
func NewBoardFromLayout(layout [][]int, logger zerolog.Logger) (*Board, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	w := len(layout[0])
	for _, row := range layout {
		if len(row) != w {
			return nil, ErrNonRectangularLayout
		}
	}
	h := len(layout)

	b := newBoard(w, h, Coordinate{}, logger)
	for y := 0; y < h; y++ {
		row := layout[h-y-1]
		for x := 0; x < w; x++ {
			b.C[b.Idx(x, y)] = newCell(row[x], FactionNone)
		}
	}

	b.logger.Info().
		Int("width", w).
		Int("height", h).
		Str("offset", b.Offset.String()).
		Msg("Board initialized from layout")
	return b, nil
}

// SetEventPublisher sets where ownership and distance notices go. nil disables them.
func (b *Board) SetEventPublisher(p EventPublisher) {
	b.publisher = p
}

func (b *Board) Idx(x, y int) int      { return y*b.W + x }
func (b *Board) XY(idx int) (int, int) { return idx % b.W, idx / b.W }

// InBounds checks if the coordinate is within board boundaries
func (b *Board) InBounds(c Coordinate) bool {
	return c.IsValid(b.W, b.H)
}

// Cell returns the cell at c, or nil when c is out of bounds.
func (b *Board) Cell(c Coordinate) *Cell {
	if !b.InBounds(c) {
		return nil
	}
	return &b.C[c.ToIndex(b.W)]
}

// CellOccupiedBy returns the cell under the unit's reported position.
func (b *Board) CellOccupiedBy(u Unit) *Cell {
	if u == nil {
		return nil
	}
	return b.Cell(u.BoardPosition())
}

// IsValidForMovement reports whether c is in bounds and not void.
func (b *Board) IsValidForMovement(c Coordinate) bool {
	cell := b.Cell(c)
	return cell != nil && !cell.IsVoid()
}

// IsVoid reports whether c is an in-bounds void cell. Out-of-bounds is not void.
func (b *Board) IsVoid(c Coordinate) bool {
	cell := b.Cell(c)
	return cell != nil && cell.IsVoid()
}

// IsOwnedBy reports whether c is on the board and owned by f.
func (b *Board) IsOwnedBy(c Coordinate, f Faction) bool {
	cell := b.Cell(c)
	return cell != nil && cell.Owner == f
}

// CenterCell is the fallback distance source when no headquarters exists.
func (b *Board) CenterCell() Coordinate {
	return Coordinate{X: b.W / 2, Y: b.H / 2}
}

// ClaimCellForFaction hands the cell at c to f and publishes an
// OwnershipChange. Cells that are not valid for movement are left alone and
// nothing is published. Returns whether the claim was applied.
func (b *Board) ClaimCellForFaction(c Coordinate, f Faction) bool {
	if !b.IsValidForMovement(c) {
		b.logger.Debug().
			Str("cell", c.String()).
			Stringer("faction", f).
			Msg("Ignoring claim on cell not valid for movement")
		return false
	}

	cell := &b.C[c.ToIndex(b.W)]
	prev := cell.Owner
	cell.Owner = f

	b.logger.Debug().
		Str("cell", c.String()).
		Stringer("previous", prev).
		Stringer("new", f).
		Msg("Cell ownership changed")
	publish(b.publisher, OwnershipChange{Coord: c, Cell: *cell, Previous: prev, New: f})
	return true
}

// TotalResourceOwnedBy sums resource values over every cell owned by f. Void
// cells belong to FactionNone, so each one adds VoidResource to its total;
// OwnershipSummary is the void-free view.
func (b *Board) TotalResourceOwnedBy(f Faction) int {
	total := 0
	for i := range b.C {
		if b.C[i].Owner == f {
			total += b.C[i].ResourceValue
		}
	}
	return total
}

// TerritoryStats aggregates the non-void cells held by one faction.
type TerritoryStats struct {
	Cells     int
	Resources int
}

// OwnershipSummary returns TerritoryStats keyed by owner, FactionNone included.
func (b *Board) OwnershipSummary() map[Faction]TerritoryStats {
	summary := make(map[Faction]TerritoryStats)
	for i := range b.C {
		cell := &b.C[i]
		if cell.IsVoid() {
			continue
		}
		s := summary[cell.Owner]
		s.Cells++
		s.Resources += cell.ResourceValue
		summary[cell.Owner] = s
	}
	return summary
}

// Mapper returns the board-to-external coordinate mapper.
func (b *Board) Mapper() CoordinateMapper {
	return NewCoordinateMapper(b.Offset)
}

// ToExternalSpace maps a board coordinate to the external space.
func (b *Board) ToExternalSpace(c Coordinate) Coordinate {
	return b.Mapper().ToExternal(c)
}

// FromExternalSpace maps an external coordinate back to the board.
func (b *Board) FromExternalSpace(e Coordinate) Coordinate {
	return b.Mapper().ToInternal(e)
}
