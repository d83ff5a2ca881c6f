package states

import "fmt"

// Phase represents the current phase of a game
type Phase int

const (
	// PhaseSetup - Engine assembly, catalog loading, starting deck
	PhaseSetup Phase = iota

	// PhaseRunning - Active gameplay, commands accepted
	PhaseRunning

	// PhaseBesieged - The invasion has arrived
	PhaseBesieged

	// PhaseEnded - Final state
	PhaseEnded
)

// String returns the string representation of a Phase
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseRunning:
		return "Running"
	case PhaseBesieged:
		return "Besieged"
	case PhaseEnded:
		return "Ended"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p Phase) IsTerminal() bool {
	return p == PhaseEnded
}

// CanReceiveCommands returns true if the game can process player commands in this phase
func (p Phase) CanReceiveCommands() bool {
	return p == PhaseRunning || p == PhaseBesieged
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p Phase) AllowedTransitions() []Phase {
	switch p {
	case PhaseSetup:
		return []Phase{PhaseRunning}
	case PhaseRunning:
		return []Phase{PhaseBesieged, PhaseEnded}
	case PhaseBesieged:
		return []Phase{PhaseEnded}
	default:
		return []Phase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
