package events

import (
	"github.com/savanna-tactics/boardcore/internal/game/core"
)

// EventPublisherAdapter turns core notices into bus events stamped with a
// session ID. It implements core.EventPublisher.
type EventPublisherAdapter struct {
	bus       Publisher
	sessionID string
}

// NewEventPublisherAdapter creates a new adapter
func NewEventPublisherAdapter(bus Publisher, sessionID string) *EventPublisherAdapter {
	return &EventPublisherAdapter{bus: bus, sessionID: sessionID}
}

// Publish implements core.EventPublisher
func (a *EventPublisherAdapter) Publish(event interface{}) {
	switch e := event.(type) {
	case core.OwnershipChange:
		a.bus.Publish(NewCellOwnershipChangedEvent(a.sessionID, e))
	case core.DistanceFieldComputed:
		a.bus.Publish(NewDistanceFieldComputedEvent(a.sessionID, e))
	case core.OccupancyNotice:
		a.bus.Publish(NewOccupancyEvent(a.sessionID, e))
	case core.TileMarkerUnknown:
		a.bus.Publish(NewTileMarkerUnknownEvent(a.sessionID, e))
	case Event:
		a.bus.Publish(e)
	}
	// Anything else is silently ignored
}
