package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snakequiz/internal/router"
	"github.com/abhisek/snakequiz/internal/screen"
	"github.com/abhisek/snakequiz/internal/session"
	"github.com/abhisek/snakequiz/internal/ui/components"
	"github.com/abhisek/snakequiz/internal/ui/layout"
	"github.com/abhisek/snakequiz/internal/ui/theme"
)

const (
	buttonReplay = iota
	buttonMenu
)

var buttonLabels = []string{"Play again", "Menu"}

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Restart key.Binding
	Menu    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Select"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("R", "Play again"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "m"),
			key.WithHelp("Esc", "Menu"),
		),
	}
}

// ResultsScreen shows the grade for a completed session.
type ResultsScreen struct {
	machine *session.Machine
	replay  func() screen.Screen
	keys    keyMap
	focus   int
	status  string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. replay builds the screen shown after a
// restart.
func New(m *session.Machine, replay func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		machine: m,
		replay:  replay,
		keys:    newKeyMap(),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(s.keys.Confirm, s.keys.Restart, s.keys.Menu)
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.Left):
		s.focus = buttonReplay
	case key.Matches(kmsg, s.keys.Right):
		s.focus = buttonMenu
	case key.Matches(kmsg, s.keys.Restart):
		return s.restart()
	case key.Matches(kmsg, s.keys.Menu):
		return s.toMenu()
	case key.Matches(kmsg, s.keys.Confirm):
		if s.focus == buttonMenu {
			return s.toMenu()
		}
		return s.restart()
	}
	return s, nil
}

func (s *ResultsScreen) restart() (screen.Screen, tea.Cmd) {
	if _, err := s.machine.Restart(); err != nil {
		s.status = session.Reason(err)
		return s, nil
	}
	return s, router.ReplaceCmd(s.replay())
}

func (s *ResultsScreen) toMenu() (screen.Screen, tea.Cmd) {
	if _, err := s.machine.ReturnToMenu(); err != nil {
		s.status = session.Reason(err)
		return s, nil
	}
	return s, router.HomeCmd()
}

func (s *ResultsScreen) View(width, height int) string {
	snap := s.machine.Snapshot()
	g := snap.Grade
	if g == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No completed session.")
	}

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString(center(theme.Heading.Render("Quiz complete!")))
	b.WriteString("\n")
	b.WriteString(center(theme.Subheading.Render(strings.TrimSpace(snap.CategoryIcon + " " + snap.CategoryTitle))))
	b.WriteString("\n\n")

	b.WriteString(center(components.GradeBadge(g.Letter)))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().
		Foreground(components.GradeColor(g.Letter)).
		Bold(true).
		Render(g.Letter.Message())))
	b.WriteString("\n\n")

	stats := components.StatPill("SCORE", fmt.Sprintf("%d", snap.Score), theme.Secondary) + "     " +
		components.StatPill("CORRECT", fmt.Sprintf("%d/%d", g.Correct, g.Total), theme.Success) + "     " +
		components.StatPill("ACCURACY", fmt.Sprintf("%d%%", g.Percentage), theme.Primary)
	b.WriteString(center(stats))
	b.WriteString("\n")

	if best, ok := s.machine.Ledger().Best(snap.CategoryKey); ok && best > snap.Score {
		b.WriteString(center(theme.Dim.Render(fmt.Sprintf("Best this run: %d pts", best))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(center(renderAnswerRow(snap.AnswerLog)))
	b.WriteString("\n\n")

	b.WriteString(center(components.ButtonRow(buttonLabels, s.focus)))

	if s.status != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.RenderStatus(s.status, width))
	}

	return b.String()
}

// renderAnswerRow draws one ✓ or ✗ per question in order.
func renderAnswerRow(log []bool) string {
	marks := make([]string, 0, len(log))
	for i, ok := range log {
		mark := theme.Fail.Render(fmt.Sprintf("Q%d ✗", i+1))
		if ok {
			mark = theme.Pass.Render(fmt.Sprintf("Q%d ✓", i+1))
		}
		marks = append(marks, mark)
	}
	return strings.Join(marks, "  ")
}
