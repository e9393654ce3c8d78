// Package screen defines what the router needs from the menu, quiz and
// results screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/snakequiz/internal/ui/layout"
)

// Screen is one page of the quiz UI. Screens read state from the session
// machine and drive it from key presses; they never hold score state of
// their own.
type Screen interface {
	Init() tea.Cmd

	// Update handles a message and returns the screen that should stay on
	// the stack in its place.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between the header and footer.
	View(width, height int) string

	// Title names the screen in the header breadcrumb.
	Title() string
}

// KeyHintProvider is implemented by screens whose footer hints depend on
// their state, e.g. the quiz before and after an answer is checked.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is implemented by screens that refresh themselves when they become
// active again after the screens above them are unwound.
type Resumer interface {
	Resume() tea.Cmd
}
