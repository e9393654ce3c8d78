package session

import (
	"time"

	"github.com/abhisek/snakequiz/internal/catalog"
	"github.com/abhisek/snakequiz/internal/grading"
	"github.com/abhisek/snakequiz/internal/scoring"
)

// NoSelection marks a question with no pending option.
const NoSelection = -1

// Session is one run through a category's questions.
type Session struct {
	// ID is the UUID for this session.
	ID string

	// CategoryKey is the category being played.
	CategoryKey string

	// Sequence is the shuffled question order, fixed at start.
	Sequence []catalog.Question

	// Position is the index into Sequence of the current question.
	Position int

	// Selected is the pending option index, or NoSelection.
	Selected int

	// Revealed is true once the current question has been checked.
	Revealed bool

	// AnswerLog holds one entry per checked question, in order.
	AnswerLog []bool

	Score      int
	Streak     int
	Multiplier float64

	// LastOutcome is the result of the most recent check (nil before the first).
	LastOutcome *scoring.Outcome

	StartedAt time.Time
}

// Current returns the question at Position.
func (s *Session) Current() catalog.Question {
	return s.Sequence[s.Position]
}

// Snapshot is a read-only view of the machine, complete enough for a
// stateless renderer.
type Snapshot struct {
	Phase Phase

	SessionID     string
	CategoryKey   string
	CategoryTitle string
	CategoryIcon  string

	// Question is the current question while answering or revealed.
	Question *catalog.Question

	Position int
	Total    int
	Selected int
	Revealed bool

	Score      int
	Streak     int
	Multiplier float64
	AnswerLog  []bool

	LastOutcome *scoring.Outcome

	// Grade is set once the session has completed.
	Grade *grading.Result

	// Ledger holds the latest completed score per category.
	Ledger         map[string]int
	LedgerTotal    int
	CompletedCount int
}

// HasSelection reports whether an option is pending.
func (s Snapshot) HasSelection() bool {
	return s.Selected != NoSelection
}

// IsLast reports whether the current question is the final one.
func (s Snapshot) IsLast() bool {
	return s.Total > 0 && s.Position == s.Total-1
}

// CorrectCount returns the number of correct answers so far.
func (s Snapshot) CorrectCount() int {
	n := 0
	for _, ok := range s.AnswerLog {
		if ok {
			n++
		}
	}
	return n
}

// Event is delivered to the observer after every accepted transition.
type Event struct {
	Op       Op
	Snapshot Snapshot

	// Outcome is set for check events.
	Outcome *scoring.Outcome
}
