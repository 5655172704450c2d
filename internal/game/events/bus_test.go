package events

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	received := false
	var receivedEvent Event

	bus.SubscribeFunc(TypeRaceStarted, func(e Event) {
		received = true
		receivedEvent = e
	})

	bus.Publish(NewRaceStartedEvent("race-1", 3, []uint32{1, 2}, 100))

	assert.True(t, received, "Event handler should have been called")
	require.NotNil(t, receivedEvent)
	assert.Equal(t, TypeRaceStarted, receivedEvent.Type())
	assert.Equal(t, "race-1", receivedEvent.RaceID())

	started, ok := receivedEvent.(*RaceStartedEvent)
	require.True(t, ok)
	assert.Equal(t, uint64(3), started.TrackID)
	assert.Equal(t, []uint32{1, 2}, started.AgentIDs)
}

func TestEventBusMultipleHandlers(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	handler1Called := false
	handler2Called := false

	id1 := bus.SubscribeFunc(TypeTickCompleted, func(e Event) { handler1Called = true })
	id2 := bus.SubscribeFunc(TypeTickCompleted, func(e Event) { handler2Called = true })
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, "tick.completed#2", id2)

	bus.Publish(NewTickCompletedEvent("race-1", 1, 2, 2, 0))

	assert.True(t, handler1Called, "Handler 1 should have been called")
	assert.True(t, handler2Called, "Handler 2 should have been called")
	assert.Equal(t, 2, bus.Len())

	bus.Unsubscribe(id1)
	handler1Called = false
	bus.Publish(NewTickCompletedEvent("race-1", 2, 2, 2, 0))
	assert.False(t, handler1Called)
	assert.Equal(t, 1, bus.Len())
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

func TestEventBusSubscriberFiltering(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	all := &TestSubscriber{id: "all"}
	walls := &TestSubscriber{id: "walls", interestedTypes: map[string]bool{TypeWallHit: true}}
	bus.Subscribe(all)
	bus.Subscribe(walls)
	assert.Equal(t, 2, bus.Len())

	bus.Publish(NewWallHitEvent("race-1", 4, 2, core.Coordinate{X: -1, Y: 0}, core.Coordinate{X: 0, Y: 0}))
	bus.Publish(NewAgentFinishedEvent("race-1", 4, 3, 3))

	assert.Len(t, all.receivedEvents, 2)
	require.Len(t, walls.receivedEvents, 1)
	assert.Equal(t, TypeWallHit, walls.receivedEvents[0].Type())

	bus.Unsubscribe("walls")
	bus.Publish(NewWallHitEvent("race-1", 4, 4, core.Coordinate{}, core.Coordinate{}))
	assert.Len(t, walls.receivedEvents, 1)
	assert.Len(t, all.receivedEvents, 3)
}

type panickingSubscriber struct{}

func (panickingSubscriber) ID() string { return "boom" }
func (panickingSubscriber) HandleEvent(Event) { panic("subscriber failure") }
func (panickingSubscriber) InterestedIn(string) bool { return true }

func TestEventBusRecoversFromPanics(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())
	bus.Subscribe(panickingSubscriber{})

	called := false
	bus.SubscribeFunc(TypeRaceCompleted, func(Event) { panic("handler failure") })
	bus.SubscribeFunc(TypeRaceCompleted, func(Event) { called = true })

	assert.NotPanics(t, func() {
		bus.Publish(NewRaceCompletedEvent("race-1", 10, nil, 0))
	})
	assert.True(t, called, "later handlers still run after a panic")
}

func TestEventBusDeliversInRegistrationOrder(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	var order []string
	first := &recordingSubscriber{id: "first", order: &order}
	bus.Subscribe(first)
	bus.SubscribeFunc(TypeAgentFinished, func(Event) { order = append(order, "func") })
	bus.Subscribe(&recordingSubscriber{id: "last", order: &order})

	// Re-subscribing keeps the original slot
	bus.Subscribe(first)

	bus.Publish(NewAgentFinishedEvent("race-1", 1, 4, 4))
	assert.Equal(t, []string{"first", "func", "last"}, order)
}

func TestEventBusHandlerMaySubscribeDuringPublish(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	late := 0
	bus.SubscribeFunc(TypeTickCompleted, func(Event) {
		bus.SubscribeFunc(TypeTickCompleted, func(Event) { late++ })
	})

	bus.Publish(NewTickCompletedEvent("race-1", 1, 1, 1, 0))
	assert.Equal(t, 0, late)
	bus.Publish(NewTickCompletedEvent("race-1", 2, 1, 1, 0))
	assert.Equal(t, 1, late)
}

type recordingSubscriber struct {
	id    string
	order *[]string
}

func (r *recordingSubscriber) ID() string { return r.id }
func (r *recordingSubscriber) HandleEvent(Event) { *r.order = append(*r.order, r.id) }
func (r *recordingSubscriber) InterestedIn(string) bool { return true }
