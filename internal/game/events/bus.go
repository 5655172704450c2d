package events

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

type registration struct {
	id        string
	sub       Subscriber
	eventType string
	handler   EventHandler
}

func (r registration) wants(eventType string) bool {
	if r.sub != nil {
		return r.sub.InterestedIn(eventType)
	}
	return r.eventType == eventType
}

func (r registration) deliver(event Event) {
	if r.sub != nil {
		r.sub.HandleEvent(event)
		return
	}
	r.handler(event)
}

// EventBus delivers events synchronously, in registration order, so a replayed
// race produces the same event stream.
type EventBus struct {
	mu      sync.RWMutex
	regs    []registration
	funcSeq int
	logger  zerolog.Logger
}

// NewEventBus creates a new event bus instance
func NewEventBus(logger zerolog.Logger) *EventBus {
	return &EventBus{
		logger: logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe registers a subscriber. A subscriber with the same ID is replaced in place.
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	reg := registration{id: subscriber.ID(), sub: subscriber}
	if i := eb.index(reg.id); i >= 0 {
		eb.regs[i] = reg
	} else {
		eb.regs = append(eb.regs, reg)
	}
	eb.logger.Debug().Str("subscriber_id", reg.id).Msg("Subscriber added to event bus")
}

// SubscribeFunc registers a handler for one event type and returns its ID
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) string {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.funcSeq++
	id := fmt.Sprintf("%s#%d", eventType, eb.funcSeq)
	eb.regs = append(eb.regs, registration{id: id, eventType: eventType, handler: handler})
	eb.logger.Debug().Str("handler_id", id).Msg("Function handler added to event bus")
	return id
}

// Unsubscribe removes a subscriber or a function handler by ID
func (eb *EventBus) Unsubscribe(id string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if i := eb.index(id); i >= 0 {
		eb.regs = slices.Delete(eb.regs, i, i+1)
		eb.logger.Debug().Str("subscriber_id", id).Msg("Subscriber removed from event bus")
	}
}

// Len returns the number of registrations
func (eb *EventBus) Len() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.regs)
}

// Publish delivers event to every interested registration. Handlers may
// subscribe or unsubscribe; changes apply from the next event.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	regs := slices.Clone(eb.regs)
	eb.mu.RUnlock()

	eventType := event.Type()
	eb.logger.Trace().
		Str("event_type", eventType).
		Str("race_id", event.RaceID()).
		Int("tick", event.Tick()).
		Msg("Publishing event")

	for _, reg := range regs {
		if reg.wants(eventType) {
			eb.safeDeliver(reg, event)
		}
	}
}

// safeDeliver keeps a panicking handler from aborting the race
func (eb *EventBus) safeDeliver(reg registration, event Event) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("subscriber_id", reg.id).
				Str("event_type", event.Type()).
				Interface("panic", r).
				Msg("Event handler panicked")
		}
	}()
	reg.deliver(event)
}

func (eb *EventBus) index(id string) int {
	return slices.IndexFunc(eb.regs, func(r registration) bool { return r.id == id })
}
