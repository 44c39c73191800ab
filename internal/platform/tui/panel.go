package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/game"
)

// Panel is the option group that digit keys currently edit.
type Panel int

const (
	PanelSpeed Panel = iota
	PanelFood
	PanelSkin
	panelCount
)

// Next returns the following panel, wrapping around.
func (p Panel) Next() Panel {
	return (p + 1) % panelCount
}

func (p Panel) String() string {
	switch p {
	case PanelSpeed:
		return "Speed"
	case PanelFood:
		return "Food"
	case PanelSkin:
		return "Skin"
	default:
		return "Unknown"
	}
}

// Range returns the selectable values of the panel.
func (p Panel) Range() (lo, hi int) {
	switch p {
	case PanelSpeed:
		return config.MinSpeed, config.MaxSpeed
	case PanelFood:
		return config.MinFood, config.MaxFood
	case PanelSkin:
		return config.SkinPink, config.SkinRed
	}
	return 0, -1
}

// selected returns the panel's current value.
func (p Panel) selected(prefs config.Preferences) int {
	switch p {
	case PanelSpeed:
		return prefs.Speed
	case PanelFood:
		return prefs.FoodNum
	case PanelSkin:
		return prefs.Skin
	}
	return 0
}

// applyOption forwards n to the game setter of panel p. The game ignores
// out-of-range values itself.
func applyOption(g *game.Game, p Panel, n int) {
	switch p {
	case PanelSpeed:
		g.SetSpeed(n)
	case PanelFood:
		g.SetFood(n)
	case PanelSkin:
		g.SetSkin(n)
	}
}

// renderPanel draws one line per option group. The active value of each
// group is highlighted in the theme color and the focused group is marked.
func renderPanel(prefs config.Preferences, focus Panel, theme config.Theme) string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(string(theme.Highlight))).
		Padding(0, 1)
	idle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	label := lipgloss.NewStyle().Width(8)

	lines := make([]string, 0, panelCount)
	for p := PanelSpeed; p < panelCount; p++ {
		cursor := "  "
		name := label.Render(p.String())
		if p == focus {
			cursor = "> "
			name = label.Bold(true).Render(p.String())
		}

		lo, hi := p.Range()
		cur := p.selected(prefs)
		opts := make([]string, 0, hi-lo+1)
		for v := lo; v <= hi; v++ {
			text := fmt.Sprint(v)
			if p == PanelSkin {
				if t, ok := config.ThemeFor(v); ok {
					text = fmt.Sprintf("%d %s", v, t.Name)
				}
			}
			if v == cur {
				opts = append(opts, active.Render(text))
			} else {
				opts = append(opts, idle.Render(text))
			}
		}
		lines = append(lines, cursor+name+strings.Join(opts, ""))
	}
	return strings.Join(lines, "\n")
}
