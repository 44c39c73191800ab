package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantAction core.Action
		wantOption int
	}{
		{"w", runeKey('w'), core.ActionUp, 0},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, 0},
		{"s", runeKey('s'), core.ActionDown, 0},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, 0},
		{"a", runeKey('a'), core.ActionLeft, 0},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, 0},
		{"d", runeKey('d'), core.ActionRight, 0},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, 0},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextPanel, 0},
		{"digit 1", runeKey('1'), core.ActionOption, 1},
		{"digit 5", runeKey('5'), core.ActionOption, 5},
		{"p", runeKey('p'), core.ActionPause, 0},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, 0},
		{"q", runeKey('q'), core.ActionQuit, 0},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, 0},
		{"digit 9", runeKey('9'), core.ActionNone, 0},
		{"x", runeKey('x'), core.ActionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, option := keys.MapKey(tt.msg)
			if action != tt.wantAction {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.wantAction)
			}
			if option != tt.wantOption {
				t.Errorf("MapKey(%q) option = %d, expected %d", tt.msg.String(), option, tt.wantOption)
			}
		})
	}
}

func TestHelpBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 10 {
		t.Errorf("FullHelp lists %d bindings, expected all 10", total)
	}
}

func TestPanelCycle(t *testing.T) {
	p := PanelSpeed
	want := []Panel{PanelFood, PanelSkin, PanelSpeed}
	for _, w := range want {
		p = p.Next()
		if p != w {
			t.Errorf("Next() = %v, expected %v", p, w)
		}
	}
}
