package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("race_id", event.RaceID()).
		Int("tick", event.Tick()).
		Time("timestamp", event.Timestamp()).
		Logger()

	logEvent := eventLogger.WithLevel(ls.logLevel)
	if logEvent == nil {
		return
	}

	switch e := event.(type) {
	case *events.RaceStartedEvent:
		logEvent.
			Uint64("track_id", e.TrackID).
			Int("num_agents", len(e.AgentIDs)).
			Int("max_ticks", e.MaxTicks)

	case *events.RaceCompletedEvent:
		logEvent.
			Int("winners", len(e.WinnerIDs)).
			Dur("duration", e.Duration)

	case *events.TickCompletedEvent:
		logEvent.
			Int("active", e.Active).
			Int("moved", e.Moved).
			Int("finished", e.Finished)

	case *events.AgentFinishedEvent:
		logEvent.
			Uint32("agent_id", e.AgentID).
			Uint32("steps", e.Steps)

	case *events.WallHitEvent:
		logEvent.
			Uint32("agent_id", e.AgentID).
			Int("intended_x", e.Intended.X).
			Int("intended_y", e.Intended.Y).
			Int("landed_x", e.Landed.X).
			Int("landed_y", e.Landed.Y)

	case *events.CollisionEvent:
		logEvent.
			Uint32("agent_id", e.AgentID).
			Int("destination_x", e.Destination.X).
			Int("destination_y", e.Destination.Y)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Race event")
}
