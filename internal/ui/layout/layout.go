package layout

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snakequiz/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// HeaderHeight and FooterHeight are the heights of the bordered bars.
	HeaderHeight = 3
	FooterHeight = 3

	// CompactBodyHeight is the body height below which screens drop
	// secondary detail lines.
	CompactBodyHeight = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats is the run-wide progress shown on the right of the header.
type HeaderStats struct {
	TotalPoints int
	Completed   int
	Categories  int
}

// Frame is everything drawn around the active screen.
type Frame struct {
	Title string
	Stats HeaderStats
	Hints []KeyHint
}

// Render draws the header and footer and fills the space between them with
// body, which is called with the size left for it. Terminals below the
// minimum size get a resize message instead.
func (f Frame) Render(width, height int, body func(width, height int) string) string {
	if IsTooSmall(width, height) {
		return RenderMinSizeMessage(width, height)
	}

	header := RenderHeader(f.Title, f.Stats, width)
	footer := RenderFooter(f.Hints, width)

	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	content := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		Render(body(width, bodyHeight))

	return header + "\n" + content + "\n" + footer
}

// HintsFor builds footer hints from key bindings, skipping disabled ones.
func HintsFor(bindings ...key.Binding) []KeyHint {
	hints := make([]KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// IsCompact reports whether a body of the given height should use the
// condensed layout.
func IsCompact(bodyHeight int) bool {
	return bodyHeight < CompactBodyHeight
}

// RenderMinSizeMessage renders the resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"🐍 Terminal too small!\n\nSnakeQuiz needs at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the top bar: app name, title centred, and the run's
// points and completed categories on the right.
func RenderHeader(title string, stats HeaderStats, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("🐍 SnakeQuiz")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	points := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%d pts", stats.TotalPoints))
	done := lipgloss.NewStyle().Foreground(theme.Success).
		Render(fmt.Sprintf("✓ %d/%d", stats.Completed, stats.Categories))

	return bar(spread(brand, center, points+"   "+done, width-4), width)
}

// RenderFooter renders the bottom bar with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return bar(strings.Join(parts, "   "), width)
}

// RenderStatus renders an inline status line, used for rejected actions.
func RenderStatus(msg string, width int) string {
	if msg == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("⚠ " + msg)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// spread places center in the middle of width and pins left and right to the
// edges, keeping at least one space between segments.
func spread(left, center, right string, width int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((width-cw)/2-lw, 1)
	rightGap := max(width-lw-leftGap-cw-rw, 1)

	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}
