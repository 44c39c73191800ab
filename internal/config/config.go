// Package config provides the per-entity simulation constants, the color
// themes, persisted player preferences and the YAML settings file.
package config

import "github.com/vovakirdan/neon-snake/internal/core"

// Simulation defaults.
const (
	DefaultCellSize = 16
	DefaultMaxStep  = 5.0
)

// Config holds tunable constants for one visual entity (the snake, a berry
// or the scheduler). Every entity owns its own copy. Skin changes are
// applied to each copy explicitly by the game, never through aliasing.
type Config struct {
	Step           int        // Frames counted since the last tick
	MaxStep        float64    // Frames per tick threshold (speed * factor)
	CellSize       int        // Grid cell size in surface units
	Color          core.Color // Base color
	HighlightColor core.Color // Brighter color for heads, berries and glow
}

// New returns a Config for the given cell size using skin 1.
func New(cellSize int) *Config {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	theme := Themes[SkinPink]
	return &Config{
		MaxStep:        DefaultMaxStep,
		CellSize:       cellSize,
		Color:          theme.Color,
		HighlightColor: theme.Highlight,
	}
}

// SetMaxStep sets the frame threshold for a tick.
func (c *Config) SetMaxStep(maxStep float64) {
	c.MaxStep = maxStep
}

// SetSkin switches the color pair. Unknown skins leave the Config unchanged.
func (c *Config) SetSkin(skin int) {
	theme, ok := ThemeFor(skin)
	if !ok {
		return
	}
	c.Color = theme.Color
	c.HighlightColor = theme.Highlight
}
