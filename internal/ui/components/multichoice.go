package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/snakequiz/internal/ui/theme"
)

// OptionLabels are the letters shown in front of each option.
var OptionLabels = []string{"A", "B", "C", "D"}

// MultiChoice renders a four-option answer list. It holds no quiz state of
// its own beyond the cursor; the pending selection and reveal flag come
// from the session snapshot.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Cursor       int
	Selected     int // -1 when nothing is selected
	Revealed     bool
}

// NewMultiChoice creates a multiple-choice list with the cursor on the
// first option.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     -1,
	}
}

// MoveUp moves the cursor one option up.
func (m *MultiChoice) MoveUp() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

// MoveDown moves the cursor one option down.
func (m *MultiChoice) MoveDown() {
	if m.Cursor < len(m.Options)-1 {
		m.Cursor++
	}
}

// View renders the options.
func (m MultiChoice) View(width int) string {
	var b strings.Builder

	for i, opt := range m.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(OptionLabels) {
			label = OptionLabels[i]
		}

		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}
		mark := "○"
		if i == m.Selected {
			mark = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, label, opt)

		var style lipgloss.Style
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = theme.Pass
			line += "  ✓"
		case m.Revealed && i == m.Selected:
			style = theme.Fail
			line += "  ✗"
		case m.Revealed:
			style = theme.Dim
		case i == m.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		case i == m.Cursor:
			style = theme.OptionCursor
		default:
			style = theme.OptionIdle
		}

		b.WriteString(style.Width(width).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
