package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/snakequiz/internal/catalog"
	"github.com/abhisek/snakequiz/internal/grading"
	"github.com/abhisek/snakequiz/internal/ledger"
	"github.com/abhisek/snakequiz/internal/scoring"
	"github.com/abhisek/snakequiz/internal/sequencer"
)

// Catalog is the read side of the question catalog the machine needs.
type Catalog interface {
	Category(key string) (catalog.Category, bool)
}

// Option configures a Machine.
type Option func(*Machine)

// WithSource sets the random source used to shuffle question order.
func WithSource(src sequencer.Source) Option {
	return func(m *Machine) { m.src = src }
}

// WithIDGenerator overrides how session IDs are generated.
func WithIDGenerator(fn func() string) Option {
	return func(m *Machine) { m.newID = fn }
}

// WithClock overrides the time source for StartedAt.
func WithClock(fn func() time.Time) Option {
	return func(m *Machine) { m.now = fn }
}

// WithObserver registers fn to be called after every accepted transition.
// fn runs outside the machine's lock and may call Snapshot.
func WithObserver(fn func(Event)) Option {
	return func(m *Machine) { m.observer = fn }
}

// WithRejectionObserver registers fn to be called with every rejected
// operation. fn runs outside the machine's lock.
func WithRejectionObserver(fn func(Op, error)) Option {
	return func(m *Machine) { m.rejected = fn }
}

// Machine owns the active Session and applies every transition to it.
// All methods are safe for concurrent use; a rejected operation leaves the
// session unchanged.
type Machine struct {
	mu sync.Mutex

	catalog  Catalog
	ledger   *ledger.Ledger
	src      sequencer.Source
	newID    func() string
	now      func() time.Time
	observer func(Event)
	rejected func(Op, error)

	phase    Phase
	category catalog.Category
	sess     *Session
	grade    *grading.Result
}

// NewMachine creates a Machine in the Selecting phase. A nil ledger gets a
// fresh one.
func NewMachine(cat Catalog, led *ledger.Ledger, opts ...Option) *Machine {
	if led == nil {
		led = ledger.New()
	}
	m := &Machine{
		catalog: cat,
		ledger:  led,
		newID:   uuid.NewString,
		now:     time.Now,
		phase:   PhaseSelecting,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Ledger returns the score ledger the machine records into.
func (m *Machine) Ledger() *ledger.Ledger {
	return m.ledger
}

// Start begins a new session for the category key.
func (m *Machine) Start(key string) (Snapshot, error) {
	return m.transition(OpStart, func() (*scoring.Outcome, error) {
		if m.phase != PhaseSelecting && m.phase != PhaseCompleted {
			return nil, reject(OpStart, m.phase, ErrInvalidState, "a session is in progress")
		}
		return nil, m.begin(OpStart, key)
	})
}

// Select records a pending option for the current question. The last
// selection before Check wins.
func (m *Machine) Select(index int) (Snapshot, error) {
	return m.transition(OpSelect, func() (*scoring.Outcome, error) {
		switch m.phase {
		case PhaseAnswering:
		case PhaseRevealed:
			return nil, reject(OpSelect, m.phase, ErrInvalidState, "question already checked")
		default:
			return nil, reject(OpSelect, m.phase, ErrInvalidState, "no question is active")
		}

		q := m.sess.Current()
		if index < 0 || index >= len(q.Options) {
			return nil, reject(OpSelect, m.phase, ErrInvalidSelection,
				"option %d out of range [0, %d)", index, len(q.Options))
		}

		m.sess.Selected = index
		return nil, nil
	})
}

// Check grades the pending selection and reveals the answer.
func (m *Machine) Check() (Snapshot, error) {
	return m.transition(OpCheck, func() (*scoring.Outcome, error) {
		switch m.phase {
		case PhaseAnswering:
		case PhaseRevealed:
			return nil, reject(OpCheck, m.phase, ErrInvalidState, "question already checked")
		default:
			return nil, reject(OpCheck, m.phase, ErrInvalidState, "no question is active")
		}

		s := m.sess
		if s.Selected == NoSelection {
			return nil, reject(OpCheck, m.phase, ErrInvalidState, "no option selected")
		}

		out, err := scoring.Evaluate(s.Current(), s.Selected, s.Streak)
		if err != nil {
			return nil, reject(OpCheck, m.phase, err, "cannot evaluate selection")
		}

		s.Score += out.Points
		s.Streak = out.Streak
		s.Multiplier = out.Multiplier
		s.AnswerLog = append(s.AnswerLog, out.Correct)
		s.Revealed = true
		s.LastOutcome = &out
		m.phase = PhaseRevealed

		return &out, nil
	})
}

// Advance moves past a revealed question. After the last question the
// score is recorded in the ledger and the session completes.
func (m *Machine) Advance() (Snapshot, error) {
	return m.transition(OpAdvance, func() (*scoring.Outcome, error) {
		if m.phase != PhaseRevealed {
			return nil, reject(OpAdvance, m.phase, ErrInvalidState, "current question not checked")
		}

		s := m.sess
		if s.Position+1 < len(s.Sequence) {
			s.Position++
			s.Selected = NoSelection
			s.Revealed = false
			m.phase = PhaseAnswering
			return nil, nil
		}

		m.ledger.Record(s.CategoryKey, s.Score)
		g := grading.Grade(s.AnswerLog)
		m.grade = &g
		m.phase = PhaseCompleted
		return nil, nil
	})
}

// Restart replays the completed session's category with a fresh shuffle.
func (m *Machine) Restart() (Snapshot, error) {
	return m.transition(OpRestart, func() (*scoring.Outcome, error) {
		if m.phase != PhaseCompleted {
			return nil, reject(OpRestart, m.phase, ErrInvalidState, "session not completed")
		}
		return nil, m.begin(OpRestart, m.sess.CategoryKey)
	})
}

// ReturnToMenu discards the current session, if any. Only completed
// sessions have been recorded in the ledger.
func (m *Machine) ReturnToMenu() (Snapshot, error) {
	return m.transition(OpReturnToMenu, func() (*scoring.Outcome, error) {
		m.sess = nil
		m.grade = nil
		m.category = catalog.Category{}
		m.phase = PhaseSelecting
		return nil, nil
	})
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Machine) transition(op Op, fn func() (*scoring.Outcome, error)) (Snapshot, error) {
	m.mu.Lock()
	out, err := fn()
	snap := m.snapshotLocked()
	m.mu.Unlock()

	if err != nil {
		if m.rejected != nil {
			m.rejected(op, err)
		}
		return snap, err
	}
	if m.observer != nil {
		m.observer(Event{Op: op, Snapshot: snap, Outcome: out})
	}
	return snap, nil
}

// begin validates key and replaces the session. Must hold m.mu.
func (m *Machine) begin(op Op, key string) error {
	cat, ok := m.catalog.Category(key)
	if !ok {
		return reject(op, m.phase, ErrUnknownCategory, "no category %q", key)
	}
	if len(cat.Questions) == 0 {
		return reject(op, m.phase, ErrEmptyCategory, "category %q has no questions", key)
	}

	m.category = cat
	m.grade = nil
	m.sess = &Session{
		ID:          m.newID(),
		CategoryKey: key,
		Sequence:    sequencer.Shuffle(cat.Questions, m.src),
		Selected:    NoSelection,
		AnswerLog:   make([]bool, 0, len(cat.Questions)),
		Multiplier:  scoring.Multiplier(0),
		StartedAt:   m.now(),
	}
	m.phase = PhaseAnswering
	return nil
}

func (m *Machine) snapshotLocked() Snapshot {
	snap := Snapshot{
		Phase:          m.phase,
		Selected:       NoSelection,
		Multiplier:     scoring.Multiplier(0),
		Ledger:         m.ledger.Entries(),
		LedgerTotal:    m.ledger.Total(),
		CompletedCount: m.ledger.CompletedCount(),
	}

	s := m.sess
	if s == nil {
		return snap
	}

	snap.SessionID = s.ID
	snap.CategoryKey = s.CategoryKey
	snap.CategoryTitle = m.category.Title
	snap.CategoryIcon = m.category.Icon
	snap.Position = s.Position
	snap.Total = len(s.Sequence)
	snap.Selected = s.Selected
	snap.Revealed = s.Revealed
	snap.Score = s.Score
	snap.Streak = s.Streak
	snap.Multiplier = s.Multiplier
	snap.AnswerLog = append([]bool(nil), s.AnswerLog...)

	if s.LastOutcome != nil {
		out := *s.LastOutcome
		snap.LastOutcome = &out
	}
	if m.phase == PhaseAnswering || m.phase == PhaseRevealed {
		q := s.Current()
		q.Options = append([]string(nil), q.Options...)
		snap.Question = &q
	}
	if m.grade != nil {
		g := *m.grade
		snap.Grade = &g
	}
	return snap
}
