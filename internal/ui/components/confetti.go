package components

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snakequiz/internal/ui/theme"
)

// ConfettiDuration is how long the celebration stays on screen.
const ConfettiDuration = time.Second

// ConfettiDoneMsg ends the confetti burst with the matching ID.
type ConfettiDoneMsg struct {
	ID int
}

// Confetti is a short celebratory burst shown after a correct answer.
// Starting a new burst invalidates the pending done message of the old one.
type Confetti struct {
	id     int
	active bool
}

// Start begins a burst and returns the command that ends it.
func (c *Confetti) Start() tea.Cmd {
	c.id++
	c.active = true
	id := c.id
	return tea.Tick(ConfettiDuration, func(time.Time) tea.Msg {
		return ConfettiDoneMsg{ID: id}
	})
}

// Stop ends any burst immediately.
func (c *Confetti) Stop() {
	c.active = false
}

// Handle consumes a done message; stale IDs are ignored.
func (c *Confetti) Handle(msg ConfettiDoneMsg) {
	if msg.ID == c.id {
		c.active = false
	}
}

// Active reports whether a burst is on screen.
func (c Confetti) Active() bool {
	return c.active
}

var confettiGlyphs = []string{"✦", "•", "✧", "▪", "*", "◆"}

// View renders one row of confetti across width, or "" when inactive.
func (c Confetti) View(width int) string {
	if !c.active || width <= 0 {
		return ""
	}

	colors := []color.Color{theme.Secondary, theme.Primary, theme.Success, theme.Accent, theme.Error}
	var b strings.Builder
	for i := 0; i < width/2; i++ {
		// cheap deterministic scatter, reseeded by burst ID
		n := (i*7 + c.id*13) % 11
		if n > 5 {
			b.WriteString("  ")
			continue
		}
		glyph := confettiGlyphs[n]
		col := colors[(i+c.id)%len(colors)]
		b.WriteString(lipgloss.NewStyle().Foreground(col).Render(glyph) + " ")
	}
	return b.String()
}
