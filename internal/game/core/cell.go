package core

import "math"

const (
	// VoidResource marks an impassable cell.
	VoidResource = -1
	// DistanceUnreached is the distance of a cell the distance field has not reached.
	DistanceUnreached = math.MaxInt
)

// Cell holds the persistent state of one board position.
// A void cell always has Owner == FactionNone and MinDistToHQ == DistanceUnreached.
type Cell struct {
	ResourceValue int
	Owner         Faction
	MinDistToHQ   int
}

func newCell(resourceValue int, owner Faction) Cell {
	if resourceValue == VoidResource {
		owner = FactionNone
	}
	return Cell{
		ResourceValue: resourceValue,
		Owner:         owner,
		MinDistToHQ:   DistanceUnreached,
	}
}

func (c *Cell) IsVoid() bool    { return c.ResourceValue == VoidResource }
func (c *Cell) IsNeutral() bool { return c.Owner == FactionNone }

// IsReached reports whether the last distance computation reached this cell.
func (c *Cell) IsReached() bool { return c.MinDistToHQ != DistanceUnreached }
