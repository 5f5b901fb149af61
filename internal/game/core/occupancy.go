package core

import (
	"sort"

	"github.com/rs/zerolog"
)

// OccupancyRegistry maps cells to the unit standing on them. It holds handles
// only; the unit-management layer owns the units.
//
// The registry never fails. Inconsistent calls are logged as warnings,
// published as OccupancyConflict notices, and applied on a best-effort basis
// so a caller bug cannot halt the game loop.
type OccupancyRegistry struct {
	cells     map[Coordinate]Unit
	publisher EventPublisher
	logger    zerolog.Logger
}

// NewOccupancyRegistry creates an empty registry
func NewOccupancyRegistry(logger zerolog.Logger) *OccupancyRegistry {
	return &OccupancyRegistry{
		cells:  make(map[Coordinate]Unit),
		logger: logger.With().Str("component", "occupancy").Logger(),
	}
}

// SetEventPublisher sets where placement events go. A nil publisher drops them.
func (r *OccupancyRegistry) SetEventPublisher(p EventPublisher) {
	r.publisher = p
}

// Register records u at c. A different unit already at c is replaced.
func (r *OccupancyRegistry) Register(u Unit, c Coordinate) {
	if u == nil {
		r.logger.Warn().Str("cell", c.String()).Msg("Ignoring registration of nil unit")
		return
	}

	r.logger.Debug().Str("unit", u.ID()).Str("cell", c.String()).Msg("Registering unit")
	if old, ok := r.cells[c]; ok && !sameUnit(old, u) {
		r.logger.Warn().
			Str("cell", c.String()).
			Str("existing", old.ID()).
			Str("unit", u.ID()).
			Msg("Cell already occupied, replacing existing unit")
		r.conflict(c, u, old, "replaced existing occupant")
	}

	r.cells[c] = u
	publish(r.publisher, OccupancyNotice{Kind: OccupancyRegistered, Coord: c, UnitID: u.ID()})
}

// Unregister removes u from c. Nothing is removed unless u is the occupant.
func (r *OccupancyRegistry) Unregister(u Unit, c Coordinate) {
	r.logger.Debug().Str("unit", unitID(u)).Str("cell", c.String()).Msg("Unregistering unit")

	current, ok := r.cells[c]
	if !ok {
		r.logger.Warn().
			Str("cell", c.String()).
			Str("unit", unitID(u)).
			Msg("Cannot unregister unit, no unit is registered at cell")
		r.conflict(c, u, nil, "cell is empty")
		return
	}
	if !sameUnit(current, u) {
		r.logger.Warn().
			Str("cell", c.String()).
			Str("unit", unitID(u)).
			Str("existing", current.ID()).
			Msg("Cannot unregister unit, a different unit is registered at cell")
		r.conflict(c, u, current, "different occupant")
		return
	}

	delete(r.cells, c)
	publish(r.publisher, OccupancyNotice{Kind: OccupancyUnregistered, Coord: c, UnitID: u.ID()})
}

// MoveUnit unregisters u from 'from' and registers it at 'to'. The
// registration happens even when the unregistration was refused.
func (r *OccupancyRegistry) MoveUnit(u Unit, from, to Coordinate) {
	r.logger.Debug().
		Str("unit", unitID(u)).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("Moving unit")
	r.Unregister(u, from)
	r.Register(u, to)
}

// OccupantAt returns the unit registered at c, if any.
func (r *OccupancyRegistry) OccupantAt(c Coordinate) (Unit, bool) {
	u, ok := r.cells[c]
	return u, ok
}

func (r *OccupancyRegistry) HasOccupant(c Coordinate) bool {
	_, ok := r.cells[c]
	return ok
}

// AllOccupants returns the registered units of faction f, ordered by ID.
func (r *OccupancyRegistry) AllOccupants(f Faction) []Unit {
	units := make([]Unit, 0, len(r.cells))
	for _, u := range r.cells {
		if u.Faction() == f {
			units = append(units, u)
		}
	}
	sort.Slice(units, func(i, j int) bool {
		return units[i].ID() < units[j].ID()
	})
	return units
}

// RemoveDead unregisters every unit that reports itself dead and returns how
// many were removed.
func (r *OccupancyRegistry) RemoveDead() int {
	removed := 0
	for c, u := range r.cells {
		if u.IsAlive() {
			continue
		}
		delete(r.cells, c)
		removed++
		r.logger.Debug().Str("unit", u.ID()).Str("cell", c.String()).Msg("Removed dead unit")
		publish(r.publisher, OccupancyNotice{Kind: OccupancyUnregistered, Coord: c, UnitID: u.ID()})
	}
	return removed
}

// Len returns the number of occupied cells.
func (r *OccupancyRegistry) Len() int {
	return len(r.cells)
}

func (r *OccupancyRegistry) conflict(c Coordinate, u, existing Unit, reason string) {
	publish(r.publisher, OccupancyNotice{
		Kind:     OccupancyConflict,
		Coord:    c,
		UnitID:   unitID(u),
		Existing: unitID(existing),
		Reason:   reason,
	})
}
