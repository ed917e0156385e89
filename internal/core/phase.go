package core

// Phase is the coarse lifecycle state shared by both engines.
//
// Valid transitions:
//
//	menu -> playing            (start, one-way)
//	playing <-> paused         (only while no winner)
//	playing -> gameOver        (terminal for gameplay)
//	gameOver -> menu           (full reset only)
//
// Everything else is rejected; engines treat a rejected transition as a
// no-op rather than an error.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// CanTransition reports whether moving from p to next is a legal phase
// transition.
func (p Phase) CanTransition(next Phase) bool {
	switch p {
	case PhaseMenu:
		return next == PhasePlaying
	case PhasePlaying:
		return next == PhasePaused || next == PhaseGameOver
	case PhasePaused:
		return next == PhasePlaying
	case PhaseGameOver:
		return next == PhaseMenu
	default:
		return false
	}
}

// Transition returns the next phase if the transition is legal, or the
// current phase unchanged if it is not. Out-of-order requests are silently
// ignored per the engines' error-handling contract.
func (p Phase) Transition(next Phase) Phase {
	if p.CanTransition(next) {
		return next
	}
	return p
}
