package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	NextPanel  key.Binding
	Option     key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.NextPanel, k.Option, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextPanel, k.Option},
		{k.Pause, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("wasd/arrows", "steer"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/down", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/left", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/right", "right"),
		),
		NextPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		Option: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "choose"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action. For ActionOption the
// second result is the digit pressed.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Action, int) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, 0
	case key.Matches(msg, k.Up):
		return core.ActionUp, 0
	case key.Matches(msg, k.Down):
		return core.ActionDown, 0
	case key.Matches(msg, k.Left):
		return core.ActionLeft, 0
	case key.Matches(msg, k.Right):
		return core.ActionRight, 0
	case key.Matches(msg, k.NextPanel):
		return core.ActionNextPanel, 0
	case key.Matches(msg, k.Option):
		return core.ActionOption, int(msg.String()[0] - '0')
	case key.Matches(msg, k.Pause):
		return core.ActionPause, 0
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot, 0
	}
	return core.ActionNone, 0
}
