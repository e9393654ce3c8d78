package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/snakequiz/internal/catalog"
	"github.com/abhisek/snakequiz/internal/session"
	"github.com/abhisek/snakequiz/internal/ui/components"
	"github.com/abhisek/snakequiz/internal/ui/layout"
	"github.com/abhisek/snakequiz/internal/ui/theme"
)

// render draws the quiz from a snapshot.
func (s *QuizScreen) render(snap session.Snapshot, width, height int) string {
	q := snap.Question
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No active question.")
	}

	cw := components.ContentWidth(width)
	var sections []string

	sections = append(sections, renderStatsLine(snap, cw))
	sections = append(sections,
		components.AnswerTrack{Position: snap.Position, Total: snap.Total, Log: snap.AnswerLog}.View(cw))

	// Reserve the confetti row so the layout does not jump.
	sections = append(sections, s.confetti.View(cw))

	sections = append(sections, components.DifficultyBadge(q.Difficulty))
	sections = append(sections, theme.Body.Bold(true).Width(cw).Render(q.Lead()))
	if q.HasCode() {
		sections = append(sections, components.CodeBlock(q.Code(), cw))
	}

	sections = append(sections, strings.TrimRight(s.choice.View(cw), "\n"))

	if snap.Revealed {
		sections = append(sections, renderFeedback(snap, *q, cw))
	}

	if s.status != "" {
		sections = append(sections, layout.RenderStatus(s.status, cw))
	}

	body := strings.Join(sections, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

// renderStatsLine shows the category on the left and score, streak and
// multiplier on the right.
func renderStatsLine(snap session.Snapshot, cw int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(strings.TrimSpace(snap.CategoryIcon + " " + snap.CategoryTitle))

	right := components.StatPill("SCORE", fmt.Sprintf("%d", snap.Score), theme.Secondary) + "   " +
		components.StatPill("STREAK", fmt.Sprintf("🔥%d", snap.Streak), theme.Accent) + "   " +
		components.StatPill("MULTI", components.MultiplierLabel(snap.Multiplier), theme.Primary)

	gap := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func renderFeedback(snap session.Snapshot, q catalog.Question, cw int) string {
	var b strings.Builder

	out := snap.LastOutcome
	if out != nil && out.Correct {
		b.WriteString(theme.Pass.Render(fmt.Sprintf("✓ Correct! +%d pts", out.Points)))
		if out.Streak > 1 {
			b.WriteString(theme.Dim.Render(fmt.Sprintf("   %d in a row, %s",
				out.Streak, components.MultiplierLabel(out.Multiplier))))
		}
	} else {
		label := components.OptionLabels[q.CorrectIndex]
		b.WriteString(theme.Fail.Render("✗ Not quite."))
		b.WriteString(theme.Dim.Render(fmt.Sprintf("   Answer: %s) %s", label, q.CorrectOption())))
	}

	if q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(cw).Render(q.Explanation))
	}

	next := "Next question"
	if snap.IsLast() {
		next = "See results"
	}
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render("Enter → " + next))

	return b.String()
}
