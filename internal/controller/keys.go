package controller

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rupert648/ratunit/internal/domain/navigation"
)

type keyMap struct {
	Down     key.Binding
	Up       key.Binding
	First    key.Binding
	Last     key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Enter    key.Binding
	Back     key.Binding
	NextFile key.Binding
	PrevFile key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		First:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Last:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		Enter:    key.NewBinding(key.WithKeys("enter", "l", "right"), key.WithHelp("enter/l", "open")),
		Back:     key.NewBinding(key.WithKeys("esc", "h", "left", "backspace"), key.WithHelp("esc/h", "back")),
		NextFile: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next file")),
		PrevFile: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev file")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Enter, k.Back, k.NextFile, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.First, k.Last},
		{k.PageDown, k.PageUp, k.Enter, k.Back},
		{k.NextFile, k.PrevFile, k.Help, k.Quit},
	}
}

// command maps a key press onto a navigation command.
func (k keyMap) command(msg tea.KeyMsg) (navigation.Command, bool) {
	bindings := []struct {
		binding key.Binding
		cmd     navigation.Command
	}{
		{k.Down, navigation.MoveDown},
		{k.Up, navigation.MoveUp},
		{k.First, navigation.JumpFirst},
		{k.Last, navigation.JumpLast},
		{k.PageDown, navigation.PageDown},
		{k.PageUp, navigation.PageUp},
		{k.Enter, navigation.Enter},
		{k.Back, navigation.Back},
		{k.NextFile, navigation.NextFile},
		{k.PrevFile, navigation.PrevFile},
		{k.Quit, navigation.Quit},
	}

	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.cmd, true
		}
	}

	return 0, false
}
