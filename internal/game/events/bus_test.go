package events

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savanna-tactics/boardcore/internal/game/core"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	received := false
	var receivedEvent Event

	bus.SubscribeFunc(TypeSessionStarted, func(e Event) {
		received = true
		receivedEvent = e
	})

	bus.Publish(NewSessionStartedEvent("test-session", 21, 16, core.Coordinate{X: 10, Y: 8}, true))

	assert.True(t, received, "Event handler should have been called")
	require.NotNil(t, receivedEvent)
	assert.Equal(t, TypeSessionStarted, receivedEvent.Type())
	assert.Equal(t, "test-session", receivedEvent.SessionID())
	assert.False(t, receivedEvent.Timestamp().IsZero())
}

func TestEventBusMultipleFuncHandlers(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	handler1Called := false
	handler2Called := false

	id1 := bus.SubscribeFunc(TypeDistanceFieldComputed, func(e Event) {
		handler1Called = true
	})
	id2 := bus.SubscribeFunc(TypeDistanceFieldComputed, func(e Event) {
		handler2Called = true
	})

	bus.Publish(NewDistanceFieldComputedEvent("s", core.DistanceFieldComputed{Reached: 4}))

	assert.True(t, handler1Called)
	assert.True(t, handler2Called)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, "distance.computed_func_2", id2)
	assert.Equal(t, 2, bus.GetFuncHandlerCount(TypeDistanceFieldComputed))
}

// TestSubscriber is a test implementation of Subscriber
type TestSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(e Event) {
	ts.receivedEvents = append(ts.receivedEvents, e)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func TestEventBusSubscriber(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	subscriber := &TestSubscriber{
		id: "renderer",
		interestedTypes: map[string]bool{
			TypeCellOwnershipChanged: true,
		},
	}
	bus.Subscribe(subscriber)
	assert.Equal(t, 1, bus.GetSubscriberCount())

	bus.Publish(NewCellOwnershipChangedEvent("s", core.OwnershipChange{New: core.FactionCats}))
	bus.Publish(NewDistanceFieldComputedEvent("s", core.DistanceFieldComputed{}))

	require.Len(t, subscriber.receivedEvents, 1)
	assert.Equal(t, TypeCellOwnershipChanged, subscriber.receivedEvents[0].Type())

	bus.Unsubscribe(subscriber.ID())
	bus.Publish(NewCellOwnershipChangedEvent("s", core.OwnershipChange{}))
	assert.Len(t, subscriber.receivedEvents, 1)
	assert.Equal(t, 0, bus.GetSubscriberCount())
}

type panickingSubscriber struct{}

func (panickingSubscriber) ID() string               { return "boom" }
func (panickingSubscriber) InterestedIn(string) bool { return true }
func (panickingSubscriber) HandleEvent(e Event)      { panic("handler failure") }

func TestEventBusRecoversFromPanics(t *testing.T) {
	var buf bytes.Buffer
	bus := NewEventBus(zerolog.New(&buf))

	bus.Subscribe(panickingSubscriber{})
	bus.SubscribeFunc(TypeUnitRegistered, func(Event) { panic("func failure") })

	after := false
	bus.SubscribeFunc(TypeUnitRegistered, func(Event) { after = true })

	assert.NotPanics(t, func() {
		bus.Publish(NewOccupancyEvent("s", core.OccupancyNotice{Kind: core.OccupancyRegistered}))
	})
	assert.True(t, after, "later handlers still run")
	assert.Contains(t, buf.String(), "handler failure")
	assert.Contains(t, buf.String(), "func failure")
}
