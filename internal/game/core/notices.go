package core

// EventPublisher receives board notifications. events.EventPublisherAdapter
// implements it on top of the event bus.
type EventPublisher interface {
	Publish(event interface{})
}

// OwnershipChange is published once per successful ClaimCellForFaction.
type OwnershipChange struct {
	Coord    Coordinate
	Cell     Cell
	Previous Faction
	New      Faction
}

// DistanceFieldComputed is published after every successful distance computation.
type DistanceFieldComputed struct {
	Source  Coordinate
	Reached int
}

// OccupancyKind tells which registry operation produced an OccupancyNotice.
type OccupancyKind int

const (
	OccupancyRegistered OccupancyKind = iota
	OccupancyUnregistered
	OccupancyConflict
)

func (k OccupancyKind) String() string {
	switch k {
	case OccupancyRegistered:
		return "registered"
	case OccupancyUnregistered:
		return "unregistered"
	case OccupancyConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// OccupancyNotice describes a registry mutation or inconsistency.
// For conflicts, Existing is the unit found at Coord (empty when the cell was empty).
type OccupancyNotice struct {
	Kind     OccupancyKind
	Coord    Coordinate
	UnitID   string
	Existing string
	Reason   string
}

// TileLayer identifies which painted layer held an unrecognised marker.
type TileLayer string

const (
	TerrainLayer  TileLayer = "terrain"
	ResourceLayer TileLayer = "resource"
)

// TileMarkerUnknown reports a painted marker with no lookup entry. The cell
// was imported with a default value instead.
type TileMarkerUnknown struct {
	Coord  Coordinate
	Layer  TileLayer
	Marker string
}

func publish(p EventPublisher, event interface{}) {
	if p != nil {
		p.Publish(event)
	}
}
