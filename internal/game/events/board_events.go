package events

import (
	"github.com/savanna-tactics/boardcore/internal/game/core"
)

// Event type constants
const (
	TypeSessionStarted        = "session.started"
	TypePhaseChanged          = "session.phase_changed"
	TypeCellOwnershipChanged  = "cell.ownership_changed"
	TypeDistanceFieldComputed = "distance.computed"
	TypeUnitRegistered        = "occupancy.registered"
	TypeUnitUnregistered      = "occupancy.unregistered"
	TypeOccupancyConflict     = "occupancy.conflict"
	TypeTileMarkerUnknown     = "tile.marker_unknown"
)

// SessionStartedEvent is published once a session has seeded its distance
// field from the headquarters.
type SessionStartedEvent struct {
	BaseEvent
	BoardWidth  int
	BoardHeight int
	HQ          core.Coordinate
	HQFallback  bool
}

func NewSessionStartedEvent(sessionID string, width, height int, hq core.Coordinate, fallback bool) *SessionStartedEvent {
	return &SessionStartedEvent{
		BaseEvent:   newBase(TypeSessionStarted, sessionID),
		BoardWidth:  width,
		BoardHeight: height,
		HQ:          hq,
		HQFallback:  fallback,
	}
}

// PhaseChangedEvent records a session lifecycle transition.
type PhaseChangedEvent struct {
	BaseEvent
	From   string
	To     string
	Reason string `json:",omitempty"`
}

func NewPhaseChangedEvent(sessionID, from, to, reason string) *PhaseChangedEvent {
	return &PhaseChangedEvent{
		BaseEvent: newBase(TypePhaseChanged, sessionID),
		From:      from,
		To:        to,
		Reason:    reason,
	}
}

// CellOwnershipChangedEvent tells the renderer to redraw one cell.
type CellOwnershipChangedEvent struct {
	BaseEvent
	Cell     core.Coordinate
	Resource int
	Previous core.Faction
	New      core.Faction
}

func NewCellOwnershipChangedEvent(sessionID string, change core.OwnershipChange) *CellOwnershipChangedEvent {
	return &CellOwnershipChangedEvent{
		BaseEvent: newBase(TypeCellOwnershipChanged, sessionID),
		Cell:      change.Coord,
		Resource:  change.Cell.ResourceValue,
		Previous:  change.Previous,
		New:       change.New,
	}
}

// DistanceFieldComputedEvent is published after each distance computation.
type DistanceFieldComputedEvent struct {
	BaseEvent
	Source  core.Coordinate
	Reached int
}

func NewDistanceFieldComputedEvent(sessionID string, d core.DistanceFieldComputed) *DistanceFieldComputedEvent {
	return &DistanceFieldComputedEvent{
		BaseEvent: newBase(TypeDistanceFieldComputed, sessionID),
		Source:    d.Source,
		Reached:   d.Reached,
	}
}

// OccupancyEvent covers registrations, unregistrations and conflicts.
type OccupancyEvent struct {
	BaseEvent
	Cell     core.Coordinate
	UnitID   string
	Existing string `json:",omitempty"`
	Reason   string `json:",omitempty"`
}

func NewOccupancyEvent(sessionID string, n core.OccupancyNotice) *OccupancyEvent {
	eventType := TypeUnitRegistered
	switch n.Kind {
	case core.OccupancyUnregistered:
		eventType = TypeUnitUnregistered
	case core.OccupancyConflict:
		eventType = TypeOccupancyConflict
	}
	return &OccupancyEvent{
		BaseEvent: newBase(eventType, sessionID),
		Cell:      n.Coord,
		UnitID:    n.UnitID,
		Existing:  n.Existing,
		Reason:    n.Reason,
	}
}

// TileMarkerUnknownEvent is the diagnostic for an unmapped painted tile.
type TileMarkerUnknownEvent struct {
	BaseEvent
	Tile   core.Coordinate
	Layer  string
	Marker string
}

func NewTileMarkerUnknownEvent(sessionID string, u core.TileMarkerUnknown) *TileMarkerUnknownEvent {
	return &TileMarkerUnknownEvent{
		BaseEvent: newBase(TypeTileMarkerUnknown, sessionID),
		Tile:      u.Coord,
		Layer:     string(u.Layer),
		Marker:    u.Marker,
	}
}
