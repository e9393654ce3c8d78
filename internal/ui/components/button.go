package components

import (
	"strings"

	"github.com/abhisek/snakequiz/internal/ui/theme"
)

// Button is a styled button label.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{
		Label:  label,
		Active: active,
	}
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render("  " + b.Label)
}

// ButtonRow renders buttons side by side with the one at active highlighted.
func ButtonRow(labels []string, active int) string {
	parts := make([]string, 0, len(labels))
	for i, l := range labels {
		parts = append(parts, NewButton(l, i == active).View())
	}
	return strings.Join(parts, "   ")
}
