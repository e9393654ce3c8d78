package quiz

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/snakequiz/internal/router"
	"github.com/abhisek/snakequiz/internal/screen"
	"github.com/abhisek/snakequiz/internal/screens/results"
	"github.com/abhisek/snakequiz/internal/session"
	"github.com/abhisek/snakequiz/internal/ui/components"
	"github.com/abhisek/snakequiz/internal/ui/layout"
)

// QuizScreen shows the active question, takes the answer and reveals the
// result. All quiz state lives in the session machine; the screen keeps
// only the cursor, the confetti burst and the last status line.
type QuizScreen struct {
	machine  *session.Machine
	keys     keyMap
	choice   components.MultiChoice
	confetti components.Confetti
	status   string

	// identifies the question the cursor belongs to
	sessionID string
	position  int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over a machine that has already started a session.
func New(m *session.Machine) *QuizScreen {
	s := &QuizScreen{
		machine:  m,
		keys:     newKeyMap(),
		position: -1,
	}
	s.sync(m.Snapshot())
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.machine.Snapshot().Phase == session.PhaseRevealed {
		return layout.HintsFor(s.keys.Next, s.keys.Abandon)
	}
	return layout.HintsFor(s.keys.Up, s.keys.Pick, s.keys.Check, s.keys.Abandon)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ConfettiDoneMsg:
		s.confetti.Handle(msg)
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	return s.render(s.machine.Snapshot(), width, height)
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if key.Matches(msg, s.keys.Abandon) {
		return s.abandon()
	}

	switch s.machine.Snapshot().Phase {
	case session.PhaseAnswering:
		switch {
		case key.Matches(msg, s.keys.Up):
			s.choice.MoveUp()
			return s.pick(s.choice.Cursor)
		case key.Matches(msg, s.keys.Down):
			s.choice.MoveDown()
			return s.pick(s.choice.Cursor)
		case key.Matches(msg, s.keys.Pick):
			return s.pick(pickIndex(msg.String()))
		case key.Matches(msg, s.keys.Check):
			return s.check()
		}

	case session.PhaseRevealed:
		if key.Matches(msg, s.keys.Next) {
			return s.advance()
		}
	}

	return s, nil
}

func (s *QuizScreen) pick(index int) (screen.Screen, tea.Cmd) {
	snap, err := s.machine.Select(index)
	if err != nil {
		s.status = session.Reason(err)
		return s, nil
	}
	s.status = ""
	s.choice.Cursor = index
	s.sync(snap)
	return s, nil
}

func (s *QuizScreen) check() (screen.Screen, tea.Cmd) {
	snap, err := s.machine.Check()
	if err != nil {
		s.status = session.Reason(err)
		return s, nil
	}
	s.status = ""
	s.sync(snap)

	if snap.LastOutcome != nil && snap.LastOutcome.Correct {
		return s, s.confetti.Start()
	}
	return s, nil
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	snap, err := s.machine.Advance()
	if err != nil {
		s.status = session.Reason(err)
		return s, nil
	}
	s.status = ""
	s.confetti.Stop()

	if snap.Phase == session.PhaseCompleted {
		m := s.machine
		replay := func() screen.Screen { return New(m) }
		return s, router.ReplaceCmd(results.New(m, replay))
	}

	s.sync(snap)
	return s, nil
}

func (s *QuizScreen) abandon() (screen.Screen, tea.Cmd) {
	if _, err := s.machine.ReturnToMenu(); err != nil {
		s.status = session.Reason(err)
		return s, nil
	}
	s.confetti.Stop()
	return s, router.HomeCmd()
}

// sync rebuilds the option list when the question changes and mirrors the
// selection and reveal flag from the snapshot.
func (s *QuizScreen) sync(snap session.Snapshot) {
	if snap.Question == nil {
		return
	}
	if snap.SessionID != s.sessionID || snap.Position != s.position {
		s.choice = components.NewMultiChoice(snap.Question.Options, snap.Question.CorrectIndex)
		s.sessionID = snap.SessionID
		s.position = snap.Position
	}
	s.choice.Selected = snap.Selected
	s.choice.Revealed = snap.Revealed
}
