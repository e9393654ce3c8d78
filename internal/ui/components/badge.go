package components

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/snakequiz/internal/catalog"
	"github.com/abhisek/snakequiz/internal/grading"
	"github.com/abhisek/snakequiz/internal/ui/theme"
)

// DifficultyColor returns the badge color for a difficulty.
func DifficultyColor(d catalog.Difficulty) color.Color {
	switch d {
	case catalog.Easy:
		return theme.Easy
	case catalog.Medium:
		return theme.Medium
	case catalog.Hard:
		return theme.Hard
	default:
		return theme.TextDim
	}
}

// GradeColor returns the badge color for a letter grade.
func GradeColor(l grading.Letter) color.Color {
	switch l {
	case grading.LetterS:
		return theme.GradeS
	case grading.LetterA:
		return theme.GradeA
	case grading.LetterB:
		return theme.GradeB
	case grading.LetterC:
		return theme.GradeC
	default:
		return theme.GradeF
	}
}

// DifficultyBadge renders an inverted difficulty label.
func DifficultyBadge(d catalog.Difficulty) string {
	return lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(DifficultyColor(d)).
		Bold(true).
		Padding(0, 1).
		Render(d.DisplayName())
}

// GradeBadge renders the large grade letter in a bordered box.
func GradeBadge(l grading.Letter) string {
	c := GradeColor(l)
	return lipgloss.NewStyle().
		Foreground(c).
		Bold(true).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(c).
		Padding(1, 4).
		Render(string(l))
}

// StatPill renders a labelled value such as "SCORE 1720".
func StatPill(label, value string, c color.Color) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+" ") +
		lipgloss.NewStyle().Foreground(c).Bold(true).Render(value)
}

// MultiplierLabel formats a multiplier as shown in the stats bar.
func MultiplierLabel(m float64) string {
	return fmt.Sprintf("×%.1f", m)
}
