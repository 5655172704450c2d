package events

import "time"

// Event is anything published on the bus during a race
type Event interface {
	Type() string
	RaceID() string
	// Tick is the simulation tick the event happened on
	Tick() int
	Timestamp() time.Time
}

// BaseEvent carries the fields every race event shares
type BaseEvent struct {
	EventType string    `json:"type"`
	Race      string    `json:"race_id"`
	AtTick    int       `json:"tick"`
	Time      time.Time `json:"timestamp"`
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) RaceID() string       { return e.Race }
func (e BaseEvent) Tick() int            { return e.AtTick }
func (e BaseEvent) Timestamp() time.Time { return e.Time }

func newBase(eventType, raceID string, tick int) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Race:      raceID,
		AtTick:    tick,
		Time:      time.Now(),
	}
}

// EventHandler handles events of the type it was registered for
type EventHandler func(Event)

// Subscriber receives every event it is interested in
type Subscriber interface {
	ID() string
	HandleEvent(Event)
	InterestedIn(eventType string) bool
}

// Publisher is the side of the bus the engine and state machine see
type Publisher interface {
	Publish(Event)
}
