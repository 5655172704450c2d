package states

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/events"
)

// State represents a race phase with lifecycle callbacks
type State interface {
	// Phase returns the RacePhase this state represents
	Phase() RacePhase

	// Enter is called when transitioning into this state
	Enter(ctx *RaceContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *RaceContext) error

	// Validate checks if the state is valid given the context
	Validate(ctx *RaceContext) error
}

// Transition represents a state transition in the history
type Transition struct {
	From      RacePhase
	To        RacePhase
	Timestamp time.Time
	Reason    string
}

// StateMachine manages race phase transitions and history
type StateMachine struct {
	mu           sync.RWMutex
	currentPhase RacePhase
	states       map[RacePhase]State
	context      *RaceContext
	history      []Transition
	publisher    events.Publisher
}

// NewStateMachine creates a state machine in PhasePending. publisher may be nil.
func NewStateMachine(ctx *RaceContext, publisher events.Publisher) *StateMachine {
	sm := &StateMachine{
		currentPhase: PhasePending,
		states:       make(map[RacePhase]State),
		context:      ctx,
		history:      make([]Transition, 0, 4),
		publisher:    publisher,
	}

	sm.RegisterState(&PendingState{})
	sm.RegisterState(&RunningState{})
	sm.RegisterState(&CompleteState{})
	sm.RegisterState(&FailedState{})

	return sm
}

// RegisterState registers a state implementation
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[state.Phase()] = state
}

// CurrentPhase returns the current race phase
func (sm *StateMachine) CurrentPhase() RacePhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase
}

// TransitionTo moves to targetPhase. The transition event is published after
// the machine is unlocked, so subscribers may query it.
func (sm *StateMachine) TransitionTo(targetPhase RacePhase, reason string) error {
	sm.mu.Lock()
	from, err := sm.transitionLocked(targetPhase, reason)
	tick := sm.context.Tick
	sm.mu.Unlock()
	if err != nil {
		return err
	}

	if sm.publisher != nil {
		sm.publisher.Publish(events.NewStateTransitionEvent(sm.context.RaceID, tick, from.String(), targetPhase.String(), reason))
	}
	return nil
}

// Fail records err on the context and moves to PhaseFailed
func (sm *StateMachine) Fail(err error) error {
	sm.mu.Lock()
	sm.context.Error = err
	sm.mu.Unlock()
	return sm.TransitionTo(PhaseFailed, err.Error())
}

func (sm *StateMachine) transitionLocked(targetPhase RacePhase, reason string) (RacePhase, error) {
	from := sm.currentPhase
	if !from.CanTransitionTo(targetPhase) {
		return from, fmt.Errorf("invalid transition from %s to %s", from, targetPhase)
	}

	target, ok := sm.states[targetPhase]
	if !ok {
		return from, fmt.Errorf("no state implementation for phase %s", targetPhase)
	}
	if err := target.Validate(sm.context); err != nil {
		return from, fmt.Errorf("target state validation failed: %w", err)
	}

	if current, ok := sm.states[from]; ok {
		// An exit error is logged but does not block the transition
		if err := current.Exit(sm.context); err != nil {
			sm.context.Logger.Error().
				Err(err).
				Str("from_phase", from.String()).
				Str("to_phase", targetPhase.String()).
				Msg("Error exiting state")
		}
	}

	sm.currentPhase = targetPhase
	if err := target.Enter(sm.context); err != nil {
		sm.currentPhase = from
		return from, fmt.Errorf("failed to enter state %s: %w", targetPhase, err)
	}

	sm.history = append(sm.history, Transition{
		From:      from,
		To:        targetPhase,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	sm.context.Logger.Debug().
		Str("from_phase", from.String()).
		Str("to_phase", targetPhase.String()).
		Str("reason", reason).
		Msg("State transition completed")

	return from, nil
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return slices.Clone(sm.history)
}

// GetContext returns the race context
func (sm *StateMachine) GetContext() *RaceContext {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.context
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (sm *StateMachine) CanTransitionTo(targetPhase RacePhase) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase.CanTransitionTo(targetPhase)
}
