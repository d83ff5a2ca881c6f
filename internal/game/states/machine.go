package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/emberfield/palisade/internal/game/events"
)

// Transition represents a phase transition in the history
type Transition struct {
	From      Phase
	To        Phase
	Timestamp time.Time
	Reason    string
}

// Machine tracks which lifecycle phase a game is in and enforces the legal
// transitions between phases. Transitions are announced on the event bus.
type Machine struct {
	mu             sync.RWMutex
	current        Phase
	history        []Transition
	maxHistorySize int
	bus            events.Publisher
	gameID         string
	logger         zerolog.Logger
}

// NewMachine creates a machine starting in PhaseSetup. A nil bus disables
// transition events.
func NewMachine(bus events.Publisher, gameID string, logger zerolog.Logger) *Machine {
	return &Machine{
		current:        PhaseSetup,
		history:        make([]Transition, 0, 8),
		maxHistorySize: 100,
		bus:            bus,
		gameID:         gameID,
		logger:         logger.With().Str("component", "states").Logger(),
	}
}

// Current returns the current game phase
func (m *Machine) Current() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (m *Machine) CanTransitionTo(target Phase) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current.CanTransitionTo(target)
}

// TransitionTo attempts to transition to the specified phase
func (m *Machine) TransitionTo(target Phase, reason string) error {
	m.mu.Lock()

	if !m.current.CanTransitionTo(target) {
		m.mu.Unlock()
		return fmt.Errorf("invalid transition from %s to %s", m.current, target)
	}

	previous := m.current
	m.current = target
	m.addToHistory(Transition{
		From:      previous,
		To:        target,
		Timestamp: time.Now(),
		Reason:    reason,
	})
	m.mu.Unlock()

	m.logger.Info().
		Str("from_phase", previous.String()).
		Str("to_phase", target.String()).
		Str("reason", reason).
		Msg("Phase transition completed")

	if m.bus != nil {
		m.bus.Publish(events.NewPhaseChangedEvent(m.gameID, previous.String(), target.String(), reason))
	}

	return nil
}

// addToHistory adds a transition to the history, maintaining max size.
// Caller holds the lock.
func (m *Machine) addToHistory(transition Transition) {
	m.history = append(m.history, transition)

	if len(m.history) > m.maxHistorySize {
		// Keep the most recent entries
		m.history = m.history[len(m.history)-m.maxHistorySize:]
	}
}

// History returns a copy of the transition history
func (m *Machine) History() []Transition {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := make([]Transition, len(m.history))
	copy(history, m.history)
	return history
}
