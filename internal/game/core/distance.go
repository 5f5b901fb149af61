package core

import "fmt"

// ComputeDistanceField fills every cell's MinDistToHQ with the number of
// 4-connected steps to source over movement-valid cells. Cells that cannot be
// reached keep DistanceUnreached. Any previous field is discarded.
//
// An invalid source leaves the board untouched and returns ErrInvalidSource.
// On success the number of reached cells, source included, is returned.
func (b *Board) ComputeDistanceField(source Coordinate) (int, error) {
	if !b.IsValidForMovement(source) {
		b.logger.Error().
			Str("source", source.String()).
			Msg("Cannot compute distance field from a cell that is not valid for movement")
		return 0, fmt.Errorf("compute distance from %s: %w", source, ErrInvalidSource)
	}

	b.logger.Debug().Str("source", source.String()).Msg("Computing distance field")

	for i := range b.C {
		b.C[i].MinDistToHQ = DistanceUnreached
	}

	frontier := make([]Coordinate, 0, len(b.C))
	frontier = append(frontier, source)
	b.C[source.ToIndex(b.W)].MinDistToHQ = 0
	reached := 1

	for head := 0; head < len(frontier); head++ {
		current := frontier[head]
		dist := b.C[current.ToIndex(b.W)].MinDistToHQ

		for _, n := range current.Neighbors() {
			if !b.IsValidForMovement(n) {
				continue
			}
			cell := &b.C[n.ToIndex(b.W)]
			if cell.IsReached() {
				continue
			}
			cell.MinDistToHQ = dist + 1
			frontier = append(frontier, n)
			reached++
		}
	}

	b.logger.Info().
		Str("source", source.String()).
		Int("reached", reached).
		Msg("Distance field computed")
	publish(b.publisher, DistanceFieldComputed{Source: source, Reached: reached})
	return reached, nil
}

// NeighborsCloserToHQ returns the movement-valid neighbors of c that are one
// step closer to the distance source, in up, right, down, left order. It is
// empty for the source itself and for unreached cells.
func (b *Board) NeighborsCloserToHQ(c Coordinate) []Coordinate {
	cell := b.Cell(c)
	if cell == nil || !cell.IsReached() || cell.MinDistToHQ == 0 {
		return nil
	}

	var closer []Coordinate
	for _, n := range c.Neighbors() {
		if !b.IsValidForMovement(n) {
			continue
		}
		if b.C[n.ToIndex(b.W)].MinDistToHQ == cell.MinDistToHQ-1 {
			closer = append(closer, n)
		}
	}
	return closer
}
