package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/core"
)

type styleKey struct {
	color core.Color
	glow  bool
}

// styleCache holds one lipgloss style per (color, glow) pair. Bubble Tea
// calls View from a single goroutine per program, so each Renderer owns
// its own cache.
type styleCache map[styleKey]lipgloss.Style

func (c styleCache) get(k styleKey) lipgloss.Style {
	if s, ok := c[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if !k.color.IsZero() {
		s = s.Foreground(lipgloss.Color(string(k.color)))
	}
	if k.glow {
		s = s.Bold(true)
	}
	c[k] = s
	return s
}

// Renderer converts Screen buffers to styled strings.
type Renderer struct {
	styles styleCache
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(styleCache)}
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color and glow share one style run.
// Glowing cells are drawn bold.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			k := styleKey{color: cell.Color, glow: cell.Glow}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != k.color || cell.Glow != k.glow {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if k.color.IsZero() && !k.glow {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.styles.get(k).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text horizontally within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
