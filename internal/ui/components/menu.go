package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snakequiz/internal/ui/theme"
)

// MenuItem is one card in a Menu.
type MenuItem struct {
	Label    string
	Detail   string // second line, dimmed
	Badge    string // right-aligned, e.g. last score
	Action   func() tea.Cmd
	Disabled bool
}

// MenuKeys are the bindings a Menu responds to. Digits 1-9 jump to the
// item at that position.
type MenuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
}

// DefaultMenuKeys binds arrows and vim keys for movement and Enter to choose.
func DefaultMenuKeys() MenuKeys {
	return MenuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Choose: key.NewBinding(key.WithKeys("enter")),
	}
}

// Menu is a vertical list of cards with a cursor that skips disabled items
// and wraps at both ends.
type Menu struct {
	Items    []MenuItem
	Selected int
	Keys     MenuKeys
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1, Keys: DefaultMenuKeys()}
	m.move(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// Update moves the cursor or runs the chosen item's action.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.Keys.Up):
		m.move(-1)
	case key.Matches(kmsg, m.Keys.Down):
		m.move(1)
	case key.Matches(kmsg, m.Keys.Choose):
		item := m.Items[m.Selected]
		if item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	default:
		if s := kmsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(m.Items) && !m.Items[i].Disabled {
				m.Selected = i
			}
		}
	}
	return m, nil
}

// move steps the cursor by dir, wrapping around and skipping disabled items.
func (m *Menu) move(dir int) {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((m.Selected+dir*step)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// View renders the menu as a list of cards at content width cw.
func (m Menu) View(cw int) string {
	cards := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		selected := i == m.Selected

		labelStyle := theme.OptionIdle
		if selected {
			labelStyle = theme.OptionCursor
		}
		if item.Disabled {
			labelStyle = theme.Dim
		}

		prefix := "  "
		if selected {
			prefix = "▸ "
		}
		label := labelStyle.Render(prefix + item.Label)
		badge := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(item.Badge)

		gap := cw - 2 - lipgloss.Width(label) - lipgloss.Width(badge)
		if gap < 1 {
			gap = 1
		}
		content := label + strings.Repeat(" ", gap) + badge
		if item.Detail != "" {
			content += "\n" + theme.Dim.Render("  "+item.Detail)
		}

		cards = append(cards, Card(content, cw, selected))
	}
	return strings.Join(cards, "\n")
}
