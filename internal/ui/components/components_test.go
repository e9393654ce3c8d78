package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snakequiz/internal/catalog"
	"github.com/abhisek/snakequiz/internal/grading"
)

func TestMultiChoice_CursorBounds(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c", "d"}, 2)

	mc.MoveUp()
	if mc.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", mc.Cursor)
	}
	for i := 0; i < 10; i++ {
		mc.MoveDown()
	}
	if mc.Cursor != 3 {
		t.Errorf("Cursor = %d, want 3", mc.Cursor)
	}
}

func TestMultiChoice_RevealMarks(t *testing.T) {
	mc := NewMultiChoice([]string{"alpha", "beta", "gamma", "delta"}, 2)
	mc.Selected = 0
	mc.Revealed = true

	view := mc.View(60)
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[2], "✓") {
		t.Errorf("correct option not marked: %q", lines[2])
	}
	if !strings.Contains(lines[0], "✗") {
		t.Errorf("wrong pick not marked: %q", lines[0])
	}
	if strings.Contains(lines[1], "✓") || strings.Contains(lines[1], "✗") {
		t.Errorf("unrelated option marked: %q", lines[1])
	}
}

func TestMultiChoice_LabelsAtoD(t *testing.T) {
	view := NewMultiChoice([]string{"w", "x", "y", "z"}, 0).View(40)
	for _, l := range OptionLabels {
		if !strings.Contains(view, l+")") {
			t.Errorf("view missing label %s", l)
		}
	}
}

func TestMenu_Navigation(t *testing.T) {
	var chosen string
	items := []MenuItem{
		{Label: "one", Action: func() tea.Cmd { chosen = "one"; return nil }},
		{Label: "two", Disabled: true},
		{Label: "three", Action: func() tea.Cmd { chosen = "three"; return nil }},
	}
	m := NewMenu(items)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2 (skips disabled)", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if chosen != "three" {
		t.Errorf("chosen = %q, want three", chosen)
	}
}

func TestMenu_Wraps(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b"}, {Label: "c", Disabled: true}})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("Selected = %d after up from top, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("Selected = %d after down from last enabled, want 0", m.Selected)
	}
}

func TestMenu_DigitJumps(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b"}, {Label: "c", Disabled: true}})

	m, _ = m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if m.Selected != 1 {
		t.Errorf("Selected = %d after 2, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if m.Selected != 1 {
		t.Errorf("Selected = %d after jumping to a disabled item, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: '9', Text: "9"})
	if m.Selected != 1 {
		t.Errorf("Selected = %d after out-of-range digit, want 1", m.Selected)
	}
}

func TestMenu_FirstEnabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a", Disabled: true}, {Label: "b"}})
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
	if empty := NewMenu(nil); empty.Selected != 0 {
		t.Errorf("empty menu Selected = %d, want 0", empty.Selected)
	}
}

func TestMenu_ViewShowsBadge(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Async", Detail: "asyncio", Badge: "✓ 900pts"}})
	view := m.View(50)
	for _, want := range []string{"Async", "asyncio", "900pts"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestConfetti_Lifecycle(t *testing.T) {
	var c Confetti
	if c.View(40) != "" {
		t.Error("inactive confetti should render nothing")
	}

	cmd := c.Start()
	if cmd == nil {
		t.Fatal("Start returned nil command")
	}
	if !c.Active() || c.View(40) == "" {
		t.Error("confetti should be visible after Start")
	}

	first := c.id
	c.Start()
	c.Handle(ConfettiDoneMsg{ID: first})
	if !c.Active() {
		t.Error("stale done message ended the new burst")
	}

	c.Handle(ConfettiDoneMsg{ID: c.id})
	if c.Active() {
		t.Error("confetti still active after its done message")
	}
}

func TestAnswerTrack(t *testing.T) {
	track := AnswerTrack{Position: 2, Total: 5, Log: []bool{true, false}}
	if got := track.Label(); got != "Question 3 of 5" {
		t.Errorf("Label = %q", got)
	}
	if got := track.Fraction(); got != 0.4 {
		t.Errorf("Fraction = %v, want 0.4", got)
	}
	if got := lipgloss.Width(track.View(60)); got > 60 {
		t.Errorf("View width = %d, want <= 60", got)
	}
	if !strings.Contains(track.View(60), "Question 3 of 5") {
		t.Error("View missing label")
	}

	empty := AnswerTrack{}
	if empty.Fraction() != 0 {
		t.Error("empty quiz should have zero progress")
	}
	if !strings.Contains(empty.View(60), "Question 1 of 0") {
		t.Error("empty track should still render its label")
	}
}

func TestBadges(t *testing.T) {
	for _, d := range catalog.AllDifficulties() {
		if !strings.Contains(DifficultyBadge(d), d.DisplayName()) {
			t.Errorf("badge for %s missing name", d)
		}
	}
	for _, l := range grading.AllLetters() {
		if !strings.Contains(GradeBadge(l), string(l)) {
			t.Errorf("grade badge for %s missing letter", l)
		}
	}
	if got := MultiplierLabel(1.4); got != "×1.4" {
		t.Errorf("MultiplierLabel(1.4) = %q", got)
	}
}

func TestButtonRow(t *testing.T) {
	row := ButtonRow([]string{"Play again", "Menu"}, 1)
	if !strings.Contains(row, "▸ Menu") {
		t.Errorf("active button not marked: %q", row)
	}
}
