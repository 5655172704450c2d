package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/events"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/events/subscribers"
)

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeRaceStarted))
	assert.True(t, logSub.InterestedIn(events.TypeTickCompleted))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "RaceStartedEvent",
			event: events.NewRaceStartedEvent("race-1", 9, []uint32{1, 2, 3}, 100),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(9), logLine["track_id"])
				assert.Equal(t, float64(3), logLine["num_agents"])
				assert.Equal(t, float64(100), logLine["max_ticks"])
			},
		},
		{
			name:  "TickCompletedEvent",
			event: events.NewTickCompletedEvent("race-1", 5, 3, 2, 1),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(5), logLine["tick"])
				assert.Equal(t, float64(2), logLine["moved"])
			},
		},
		{
			name:  "WallHitEvent",
			event: events.NewWallHitEvent("race-1", 4, 2, core.Coordinate{X: 3, Y: -1}, core.Coordinate{X: 3, Y: 0}),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(4), logLine["agent_id"])
				assert.Equal(t, float64(-1), logLine["intended_y"])
				assert.Equal(t, float64(0), logLine["landed_y"])
			},
		},
		{
			name:  "AgentFinishedEvent",
			event: events.NewAgentFinishedEvent("race-1", 2, 7, 7),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(2), logLine["agent_id"])
				assert.Equal(t, float64(7), logLine["steps"])
			},
		},
		{
			name:  "RaceCompletedEvent",
			event: events.NewRaceCompletedEvent("race-1", 12, []uint32{2}, 5*time.Minute),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(12), logLine["tick"])
				assert.Equal(t, float64(1), logLine["winners"])
				assert.Equal(t, float64(300000), logLine["duration"])
			},
		},
		{
			name:  "StateTransitionEvent",
			event: events.NewStateTransitionEvent("race-1", 12, "Running", "Complete", "all agents finished"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Running", logLine["from_phase"])
				assert.Equal(t, "Complete", logLine["to_phase"])
				assert.Equal(t, float64(12), logLine["tick"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			logSub.HandleEvent(tc.event)

			logOutput := buf.String()
			require.NotEmpty(t, logOutput, "Log output should not be empty")

			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(logOutput), &logLine))

			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, "Race event", logLine["message"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, "race-1", logLine["race_id"])

			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("filtered-logger", zerolog.Nop(), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeRaceStarted, events.TypeRaceCompleted})

	assert.True(t, logSub.InterestedIn(events.TypeRaceStarted))
	assert.True(t, logSub.InterestedIn(events.TypeRaceCompleted))
	assert.False(t, logSub.InterestedIn(events.TypeTickCompleted))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeTickCompleted))
}

func TestLoggerSubscriberDevMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev-logger", zerolog.New(&buf), zerolog.DebugLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewAgentFinishedEvent("race-2", 1, 3, 3))

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
	assert.Equal(t, "debug", logLine["level"])
	data, ok := logLine["event_data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["AgentID"])
	assert.Equal(t, float64(3), data["tick"])
}
