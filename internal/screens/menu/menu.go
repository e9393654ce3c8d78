package menu

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snakequiz/internal/catalog"
	"github.com/abhisek/snakequiz/internal/router"
	"github.com/abhisek/snakequiz/internal/screen"
	"github.com/abhisek/snakequiz/internal/screens/quiz"
	"github.com/abhisek/snakequiz/internal/session"
	"github.com/abhisek/snakequiz/internal/ui/components"
	"github.com/abhisek/snakequiz/internal/ui/layout"
	"github.com/abhisek/snakequiz/internal/ui/theme"
)

type keyMap struct {
	Navigate key.Binding
	Start    key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑↓", "Navigate"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("Q", "Quit"),
		),
	}
}

// MenuScreen lists the categories and starts a session for the chosen one.
type MenuScreen struct {
	machine    *session.Machine
	categories []catalog.Category
	menu       components.Menu
	keys       keyMap
	status     string
}

var _ screen.Screen = (*MenuScreen)(nil)
var _ screen.KeyHintProvider = (*MenuScreen)(nil)

// New creates a MenuScreen for categories in display order.
func New(m *session.Machine, categories []catalog.Category) *MenuScreen {
	s := &MenuScreen{
		machine:    m,
		categories: categories,
		keys:       newKeyMap(),
	}

	items := make([]components.MenuItem, 0, len(categories))
	for _, c := range categories {
		k := c.Key
		items = append(items, components.MenuItem{
			Label:  strings.TrimSpace(c.Icon + " " + c.Title),
			Detail: fmt.Sprintf("%s · %d questions", c.Description, len(c.Questions)),
			Action: func() tea.Cmd { return s.start(k) },
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *MenuScreen) Init() tea.Cmd {
	return nil
}

// Resume clears any status left from before the last session.
func (s *MenuScreen) Resume() tea.Cmd {
	s.status = ""
	return nil
}

func (s *MenuScreen) Title() string {
	return "Categories"
}

func (s *MenuScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(s.keys.Navigate, s.keys.Start, s.keys.Quit)
}

func (s *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, s.keys.Quit) {
		return s, tea.Quit
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// start begins a session and pushes the quiz screen; a rejected start is
// shown as a status line.
func (s *MenuScreen) start(categoryKey string) tea.Cmd {
	if _, err := s.machine.Start(categoryKey); err != nil {
		s.status = session.Reason(err)
		return nil
	}
	s.status = ""
	return router.PushCmd(quiz.New(s.machine))
}

func (s *MenuScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	snap := s.machine.Snapshot()

	// Badges come from the ledger so they refresh after every session.
	m := s.menu
	m.Items = make([]components.MenuItem, len(s.menu.Items))
	copy(m.Items, s.menu.Items)
	compact := layout.IsCompact(height)
	for i, c := range s.categories {
		if score, ok := snap.Ledger[c.Key]; ok {
			m.Items[i].Badge = fmt.Sprintf("✓ %dpts", score)
		}
		if compact {
			m.Items[i].Detail = ""
		}
	}

	var sections []string
	sections = append(sections, theme.Heading.Width(cw).Render("🐍 Python Quiz"))
	sections = append(sections, theme.Subheading.Width(cw).Render("Pick a category to test your Python knowledge"))
	sections = append(sections, m.View(cw))
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d completed · %d pts", snap.CompletedCount, len(s.categories), snap.LedgerTotal)))

	if s.status != "" {
		sections = append(sections, layout.RenderStatus(s.status, cw))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(sections, "\n\n"))
}
