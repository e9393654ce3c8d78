package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/snakequiz/internal/ui/theme"
)

// AnswerTrack is the segmented bar above a question: one cell per question,
// green or red once answered, yellow for the current one.
type AnswerTrack struct {
	Position int
	Total    int
	Log      []bool
}

// Label returns "Question n of m".
func (a AnswerTrack) Label() string {
	return fmt.Sprintf("Question %d of %d", a.Position+1, a.Total)
}

// Fraction returns the share of questions already answered.
func (a AnswerTrack) Fraction() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(len(a.Log)) / float64(a.Total)
}

// View renders the label followed by the cells, stretched to width.
func (a AnswerTrack) View(width int) string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(a.Label()) + "  "
	if a.Total == 0 {
		return label
	}

	cell := (width - lipgloss.Width(label)) / a.Total
	cell = max(cell-1, 1)

	var b strings.Builder
	b.WriteString(label)
	for i := 0; i < a.Total; i++ {
		b.WriteString(cellStyle(a, i).Render(strings.Repeat(" ", cell)))
		if i < a.Total-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func cellStyle(a AnswerTrack, i int) lipgloss.Style {
	switch {
	case i < len(a.Log) && a.Log[i]:
		return lipgloss.NewStyle().Background(theme.Success)
	case i < len(a.Log):
		return lipgloss.NewStyle().Background(theme.Error)
	case i == a.Position:
		return theme.ProgressFilled
	default:
		return theme.ProgressEmpty
	}
}
