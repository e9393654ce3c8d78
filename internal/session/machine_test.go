package session

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/snakequiz/internal/catalog"
	"github.com/abhisek/snakequiz/internal/grading"
	"github.com/abhisek/snakequiz/internal/ledger"
	"github.com/abhisek/snakequiz/internal/sequencer"
)

// identitySource keeps Fisher–Yates from moving anything.
type identitySource struct{}

func (identitySource) IntN(n int) int { return n - 1 }

type stubCatalog map[string]catalog.Category

func (s stubCatalog) Category(key string) (catalog.Category, bool) {
	c, ok := s[key]
	return c, ok
}

func q(id int, d catalog.Difficulty, correct int) catalog.Question {
	return catalog.Question{
		ID:           id,
		Difficulty:   d,
		Prompt:       fmt.Sprintf("Question %d?", id),
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: correct,
		Explanation:  "because",
	}
}

func testCatalog() stubCatalog {
	return stubCatalog{
		"gotchas": {
			Key:   "gotchas",
			Title: "Python Gotchas",
			Icon:  "⚠️",
			Questions: []catalog.Question{
				q(1, catalog.Easy, 0),
				q(2, catalog.Easy, 1),
				q(3, catalog.Medium, 2),
				q(4, catalog.Hard, 3),
				q(5, catalog.Hard, 0),
			},
		},
		"empty": {Key: "empty", Title: "Nothing Here"},
	}
}

func newTestMachine(opts ...Option) *Machine {
	opts = append([]Option{
		WithSource(identitySource{}),
		WithIDGenerator(func() string { return "test-session-id" }),
	}, opts...)
	return NewMachine(testCatalog(), ledger.New(), opts...)
}

func answer(t *testing.T, m *Machine, index int) Snapshot {
	t.Helper()
	_, err := m.Select(index)
	require.NoError(t, err)
	snap, err := m.Check()
	require.NoError(t, err)
	return snap
}

func wrongIndex(q *catalog.Question) int {
	return (q.CorrectIndex + 1) % len(q.Options)
}

func TestMachine_InitialSnapshot(t *testing.T) {
	m := newTestMachine()
	snap := m.Snapshot()

	assert.Equal(t, PhaseSelecting, snap.Phase)
	assert.Nil(t, snap.Question)
	assert.Equal(t, NoSelection, snap.Selected)
	assert.Equal(t, 1.0, snap.Multiplier)
	assert.Equal(t, 0, snap.CompletedCount)
}

func TestMachine_Start(t *testing.T) {
	m := newTestMachine()
	snap, err := m.Start("gotchas")
	require.NoError(t, err)

	assert.Equal(t, PhaseAnswering, snap.Phase)
	assert.Equal(t, "test-session-id", snap.SessionID)
	assert.Equal(t, "gotchas", snap.CategoryKey)
	assert.Equal(t, "Python Gotchas", snap.CategoryTitle)
	assert.Equal(t, 0, snap.Position)
	assert.Equal(t, 5, snap.Total)
	assert.Equal(t, NoSelection, snap.Selected)
	assert.False(t, snap.Revealed)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.Streak)
	assert.Empty(t, snap.AnswerLog)
	require.NotNil(t, snap.Question)
	assert.Equal(t, 1, snap.Question.ID)
}

func TestMachine_StartErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want error
	}{
		{"unknown category", "nope", ErrUnknownCategory},
		{"empty category", "empty", ErrEmptyCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine()
			snap, err := m.Start(tt.key)
			require.ErrorIs(t, err, tt.want)

			var te *TransitionError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, OpStart, te.Op)
			assert.Equal(t, PhaseSelecting, snap.Phase)
		})
	}
}

func TestMachine_PerfectRun(t *testing.T) {
	m := newTestMachine()
	_, err := m.Start("gotchas")
	require.NoError(t, err)

	wantScores := []int{120, 260, 580, 1120, 1720}
	for i, want := range wantScores {
		snap := m.Snapshot()
		require.NotNil(t, snap.Question)

		snap = answer(t, m, snap.Question.CorrectIndex)
		assert.Equal(t, want, snap.Score, "score after question %d", i+1)
		assert.Equal(t, i+1, snap.Streak)
		assert.Len(t, snap.AnswerLog, i+1)
		assert.Equal(t, PhaseRevealed, snap.Phase)

		_, err = m.Advance()
		require.NoError(t, err)
	}

	snap := m.Snapshot()
	assert.Equal(t, PhaseCompleted, snap.Phase)
	assert.Equal(t, 1720, snap.Score)
	assert.Equal(t, []bool{true, true, true, true, true}, snap.AnswerLog)
	require.NotNil(t, snap.Grade)
	assert.Equal(t, 100, snap.Grade.Percentage)
	assert.Equal(t, grading.LetterS, snap.Grade.Letter)
	assert.Nil(t, snap.Question)

	assert.Equal(t, map[string]int{"gotchas": 1720}, snap.Ledger)
	assert.Equal(t, 1720, snap.LedgerTotal)
	assert.Equal(t, 1, snap.CompletedCount)
}

func TestMachine_AllWrong(t *testing.T) {
	m := newTestMachine()
	_, err := m.Start("gotchas")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		snap := answer(t, m, wrongIndex(m.Snapshot().Question))
		assert.Equal(t, 0, snap.Score)
		assert.Equal(t, 0, snap.Streak)
		assert.Equal(t, 1.0, snap.Multiplier)
		require.NotNil(t, snap.LastOutcome)
		assert.False(t, snap.LastOutcome.Correct)

		_, err = m.Advance()
		require.NoError(t, err)
	}

	snap := m.Snapshot()
	require.NotNil(t, snap.Grade)
	assert.Equal(t, 0, snap.Grade.Percentage)
	assert.Equal(t, grading.LetterF, snap.Grade.Letter)
	assert.Equal(t, map[string]int{"gotchas": 0}, snap.Ledger)
}

func TestMachine_WrongAnswerResetsStreak(t *testing.T) {
	m := newTestMachine()
	_, err := m.Start("gotchas")
	require.NoError(t, err)

	answer(t, m, m.Snapshot().Question.CorrectIndex)
	_, _ = m.Advance()
	snap := answer(t, m, m.Snapshot().Question.CorrectIndex)
	assert.Equal(t, 2, snap.Streak)
	_, _ = m.Advance()

	snap = answer(t, m, wrongIndex(m.Snapshot().Question))
	assert.Equal(t, 260, snap.Score)
	assert.Equal(t, 0, snap.Streak)
	assert.Equal(t, 1.0, snap.Multiplier)
	_, _ = m.Advance()

	// streak restarts at 1: hard at 1.2
	snap = answer(t, m, m.Snapshot().Question.CorrectIndex)
	assert.Equal(t, 260+360, snap.Score)
	assert.Equal(t, []bool{true, true, false, true}, snap.AnswerLog)
}

func TestMachine_SelectLastWriteWins(t *testing.T) {
	m := newTestMachine()
	_, err := m.Start("gotchas")
	require.NoError(t, err)

	correct := m.Snapshot().Question.CorrectIndex
	_, err = m.Select(wrongIndex(m.Snapshot().Question))
	require.NoError(t, err)
	snap, err := m.Select(correct)
	require.NoError(t, err)
	assert.Equal(t, correct, snap.Selected)

	snap, err = m.Check()
	require.NoError(t, err)
	assert.True(t, snap.AnswerLog[0])
}

func TestMachine_RejectedTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, m *Machine)
		op    func(m *Machine) (Snapshot, error)
		want  error
	}{
		{
			name:  "select before start",
			setup: func(t *testing.T, m *Machine) {},
			op:    func(m *Machine) (Snapshot, error) { return m.Select(0) },
			want:  ErrInvalidState,
		},
		{
			name:  "check without selection",
			setup: func(t *testing.T, m *Machine) { m.Start("gotchas") },
			op:    func(m *Machine) (Snapshot, error) { return m.Check() },
			want:  ErrInvalidState,
		},
		{
			name:  "select out of range",
			setup: func(t *testing.T, m *Machine) { m.Start("gotchas") },
			op:    func(m *Machine) (Snapshot, error) { return m.Select(4) },
			want:  ErrInvalidSelection,
		},
		{
			name:  "select negative",
			setup: func(t *testing.T, m *Machine) { m.Start("gotchas") },
			op:    func(m *Machine) (Snapshot, error) { return m.Select(-1) },
			want:  ErrInvalidSelection,
		},
		{
			name: "select after check",
			setup: func(t *testing.T, m *Machine) {
				m.Start("gotchas")
				answer(t, m, 0)
			},
			op:   func(m *Machine) (Snapshot, error) { return m.Select(1) },
			want: ErrInvalidState,
		},
		{
			name: "check twice",
			setup: func(t *testing.T, m *Machine) {
				m.Start("gotchas")
				answer(t, m, 0)
			},
			op:   func(m *Machine) (Snapshot, error) { return m.Check() },
			want: ErrInvalidState,
		},
		{
			name:  "advance before check",
			setup: func(t *testing.T, m *Machine) { m.Start("gotchas") },
			op:    func(m *Machine) (Snapshot, error) { return m.Advance() },
			want:  ErrInvalidState,
		},
		{
			name:  "start during session",
			setup: func(t *testing.T, m *Machine) { m.Start("gotchas") },
			op:    func(m *Machine) (Snapshot, error) { return m.Start("gotchas") },
			want:  ErrInvalidState,
		},
		{
			name:  "restart before completion",
			setup: func(t *testing.T, m *Machine) { m.Start("gotchas") },
			op:    func(m *Machine) (Snapshot, error) { return m.Restart() },
			want:  ErrInvalidState,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine()
			tt.setup(t, m)
			before := m.Snapshot()

			_, err := tt.op(m)
			require.ErrorIs(t, err, tt.want)

			var te *TransitionError
			require.True(t, errors.As(err, &te))
			assert.NotEmpty(t, te.Reason)

			assert.Equal(t, before, m.Snapshot(), "rejected operation changed state")
		})
	}
}

func TestMachine_AnswerLogInvariants(t *testing.T) {
	m := NewMachine(testCatalog(), nil, WithSource(sequencer.NewSource(7)))
	_, err := m.Start("gotchas")
	require.NoError(t, err)

	prevScore := 0
	for i := 0; i < 5; i++ {
		snap := m.Snapshot()
		assert.Len(t, snap.AnswerLog, snap.Position)

		idx := snap.Question.CorrectIndex
		if i%2 == 1 {
			idx = wrongIndex(snap.Question)
		}
		snap = answer(t, m, idx)
		assert.Len(t, snap.AnswerLog, snap.Position+1)
		assert.GreaterOrEqual(t, snap.Score, prevScore)
		assert.LessOrEqual(t, snap.Multiplier, 3.0)
		prevScore = snap.Score

		_, err = m.Advance()
		require.NoError(t, err)
	}

	snap := m.Snapshot()
	assert.Len(t, snap.AnswerLog, snap.Total)
	assert.Equal(t, 3, snap.CorrectCount())
}

func sequenceIDs(t *testing.T, m *Machine) []int {
	t.Helper()
	var ids []int
	for {
		snap := m.Snapshot()
		ids = append(ids, snap.Question.ID)
		answer(t, m, 0)
		snap, err := m.Advance()
		require.NoError(t, err)
		if snap.Phase == PhaseCompleted {
			return ids
		}
	}
}

func TestMachine_RestartKeepsQuestionSet(t *testing.T) {
	var n int
	m := NewMachine(testCatalog(), nil,
		WithSource(sequencer.NewSource(99)),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
	_, err := m.Start("gotchas")
	require.NoError(t, err)
	first := sequenceIDs(t, m)

	snap, err := m.Restart()
	require.NoError(t, err)
	assert.Equal(t, PhaseAnswering, snap.Phase)
	assert.Equal(t, "id-2", snap.SessionID)
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, snap.AnswerLog)
	assert.Nil(t, snap.Grade)
	second := sequenceIDs(t, m)

	slices.Sort(first)
	slices.Sort(second)
	assert.Equal(t, first, second)
}

func TestMachine_ReturnToMenu(t *testing.T) {
	t.Run("abandon discards without recording", func(t *testing.T) {
		m := newTestMachine()
		_, _ = m.Start("gotchas")
		answer(t, m, m.Snapshot().Question.CorrectIndex)

		snap, err := m.ReturnToMenu()
		require.NoError(t, err)
		assert.Equal(t, PhaseSelecting, snap.Phase)
		assert.Equal(t, 0, snap.Score)
		assert.Empty(t, snap.SessionID)
		assert.Empty(t, snap.Ledger)
	})

	t.Run("after completion keeps ledger", func(t *testing.T) {
		m := newTestMachine()
		_, _ = m.Start("gotchas")
		sequenceIDs(t, m)

		snap, err := m.ReturnToMenu()
		require.NoError(t, err)
		assert.Equal(t, PhaseSelecting, snap.Phase)
		assert.Nil(t, snap.Grade)
		assert.Equal(t, 1, snap.CompletedCount)
	})

	t.Run("start again from completed", func(t *testing.T) {
		m := newTestMachine()
		_, _ = m.Start("gotchas")
		sequenceIDs(t, m)

		snap, err := m.Start("gotchas")
		require.NoError(t, err)
		assert.Equal(t, PhaseAnswering, snap.Phase)
	})
}

func TestMachine_LedgerOverwritesOnReplay(t *testing.T) {
	m := newTestMachine()
	_, _ = m.Start("gotchas")
	for i := 0; i < 5; i++ {
		answer(t, m, m.Snapshot().Question.CorrectIndex)
		_, _ = m.Advance()
	}
	_, err := m.Restart()
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		answer(t, m, wrongIndex(m.Snapshot().Question))
		_, _ = m.Advance()
	}

	snap := m.Snapshot()
	assert.Equal(t, 0, snap.Ledger["gotchas"])
	best, ok := m.Ledger().Best("gotchas")
	assert.True(t, ok)
	assert.Equal(t, 1720, best)
}

func TestMachine_Observer(t *testing.T) {
	var events []Event
	var m *Machine
	m = newTestMachine(WithObserver(func(ev Event) {
		// must not deadlock
		_ = m.Snapshot()
		events = append(events, ev)
	}))

	_, _ = m.Start("gotchas")
	_, _ = m.Check() // rejected, no event
	answer(t, m, m.Snapshot().Question.CorrectIndex)
	_, _ = m.Advance()

	ops := make([]Op, 0, len(events))
	for _, ev := range events {
		ops = append(ops, ev.Op)
	}
	assert.Equal(t, []Op{OpStart, OpSelect, OpCheck, OpAdvance}, ops)

	check := events[2]
	require.NotNil(t, check.Outcome)
	assert.True(t, check.Outcome.Correct)
	assert.Equal(t, 120, check.Outcome.Points)
	assert.Equal(t, catalog.Easy, check.Snapshot.Question.Difficulty)
}

func TestMachine_RejectionObserver(t *testing.T) {
	var rejected []Op
	m := newTestMachine(WithRejectionObserver(func(op Op, err error) {
		assert.Error(t, err)
		rejected = append(rejected, op)
	}))

	_, _ = m.Check()
	_, _ = m.Start("nope")
	_, _ = m.Start("gotchas")

	assert.Equal(t, []Op{OpCheck, OpStart}, rejected)
}

func TestReason(t *testing.T) {
	m := newTestMachine()
	_, err := m.Check()
	assert.Equal(t, "no question is active", Reason(err))
	assert.Equal(t, "boom", Reason(errors.New("boom")))
}

func TestMachine_SnapshotIsCopy(t *testing.T) {
	m := newTestMachine()
	_, _ = m.Start("gotchas")
	snap := answer(t, m, 0)

	snap.AnswerLog[0] = !snap.AnswerLog[0]
	snap.Question.Options[0] = "mutated"
	snap.Ledger["x"] = 1

	fresh := m.Snapshot()
	assert.NotEqual(t, snap.AnswerLog[0], fresh.AnswerLog[0])
	assert.Equal(t, "a", fresh.Question.Options[0])
	assert.NotContains(t, fresh.Ledger, "x")
}

func TestMachine_ConcurrentUse(t *testing.T) {
	m := NewMachine(testCatalog(), nil)
	_, err := m.Start("gotchas")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = m.Select(i % 4)
			_ = m.Snapshot()
			_, _ = m.Check()
		}(i)
	}
	wg.Wait()

	snap := m.Snapshot()
	assert.Equal(t, PhaseRevealed, snap.Phase)
	assert.Len(t, snap.AnswerLog, 1)
}

func TestTransitionError_Message(t *testing.T) {
	err := reject(OpCheck, PhaseAnswering, ErrInvalidState, "no option selected")
	assert.Equal(t, "check rejected in answering phase: no option selected: invalid state", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidState))
}

func TestPhase_String(t *testing.T) {
	for p, want := range map[Phase]string{
		PhaseSelecting: "selecting",
		PhaseAnswering: "answering",
		PhaseRevealed:  "revealed",
		PhaseCompleted: "completed",
		Phase(42):      "unknown",
	} {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), got, want)
		}
	}
}
