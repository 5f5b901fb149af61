package testutil

import (
	"github.com/rs/zerolog"

	"github.com/savanna-tactics/boardcore/internal/game/core"
	"github.com/savanna-tactics/boardcore/internal/game/events"
)

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// StubUnit is a minimal core.Unit for tests.
type StubUnit struct {
	UnitID   string
	Side     core.Faction
	Position core.Coordinate
	Dead     bool
}

// NewStubUnit returns a live unit of faction f at pos.
func NewStubUnit(id string, f core.Faction, pos core.Coordinate) *StubUnit {
	return &StubUnit{UnitID: id, Side: f, Position: pos}
}

func (u *StubUnit) ID() string                     { return u.UnitID }
func (u *StubUnit) Faction() core.Faction          { return u.Side }
func (u *StubUnit) BoardPosition() core.Coordinate { return u.Position }
func (u *StubUnit) IsAlive() bool                  { return !u.Dead }

// EventRecorder is a bus subscriber that keeps every event it receives.
type EventRecorder struct {
	Events []events.Event
}

func (r *EventRecorder) ID() string                 { return "recorder" }
func (r *EventRecorder) InterestedIn(string) bool   { return true }
func (r *EventRecorder) HandleEvent(e events.Event) { r.Events = append(r.Events, e) }

// Types returns the recorded event types in order.
func (r *EventRecorder) Types() []string {
	types := make([]string, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.Type()
	}
	return types
}

// OfType returns the recorded events with the given type.
func (r *EventRecorder) OfType(eventType string) []events.Event {
	var out []events.Event
	for _, e := range r.Events {
		if e.Type() == eventType {
			out = append(out, e)
		}
	}
	return out
}
