package session

// Phase represents where the quiz currently is.
type Phase int

const (
	PhaseSelecting Phase = iota // Choosing a category
	PhaseAnswering              // Current question shown, not yet checked
	PhaseRevealed               // Current question checked, feedback shown
	PhaseCompleted              // All questions answered, grade available
)

func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhaseAnswering:
		return "answering"
	case PhaseRevealed:
		return "revealed"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Op names a state machine operation.
type Op string

const (
	OpStart        Op = "start"
	OpSelect       Op = "select"
	OpCheck        Op = "check"
	OpAdvance      Op = "advance"
	OpRestart      Op = "restart"
	OpReturnToMenu Op = "return_to_menu"
)
