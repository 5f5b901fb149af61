package session

import "fmt"

// Phase is the lifecycle stage of a session.
type Phase int

const (
	// PhaseCreated - board and registry exist, no distance field yet
	PhaseCreated Phase = iota

	// PhaseRunning - HQ placed, claims and scoring allowed
	PhaseRunning

	// PhaseEnded - final scores taken, nothing changes any more
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseCreated:
		return "created"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p Phase) IsTerminal() bool {
	return p == PhaseEnded
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p Phase) AllowedTransitions() []Phase {
	switch p {
	case PhaseCreated:
		return []Phase{PhaseRunning, PhaseEnded}
	case PhaseRunning:
		return []Phase{PhaseEnded}
	default:
		return nil
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
