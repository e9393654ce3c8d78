package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Pick    key.Binding
	Check   key.Binding
	Next    key.Binding
	Abandon key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Choose"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "a", "b", "c", "d"),
			key.WithHelp("A-D", "Pick"),
		),
		Check: key.NewBinding(
			key.WithKeys("enter", "space", " "),
			key.WithHelp("Enter", "Check"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", "right", "n"),
			key.WithHelp("Enter", "Next"),
		),
		Abandon: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Menu"),
		),
	}
}

// pickIndex maps 1-4 and a-d to an option index, or -1.
func pickIndex(k string) int {
	switch k {
	case "1", "a":
		return 0
	case "2", "b":
		return 1
	case "3", "c":
		return 2
	case "4", "d":
		return 3
	}
	return -1
}
