package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snakequiz/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for card sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
// A highlighted card uses the primary border color.
func Card(content string, cw int, highlighted bool) string {
	border := theme.Border
	if highlighted {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw).
		Padding(0, 1).
		Render(content)
}

// CodeBlock renders source code in a dark panel. Lines keep their
// indentation.
func CodeBlock(code string, cw int) string {
	return theme.CodeBlock.Width(cw).Render(code)
}
