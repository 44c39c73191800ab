package game

import (
	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
)

// Berry is a single consumable item. It is repositioned, never recreated.
type Berry struct {
	cfg   *config.Config
	grid  *RandomGrid
	pos   core.Point
	inset float64
	blur  float64
}

// NewBerry creates a berry at a random position.
func NewBerry(grid *RandomGrid, cellSize int, inset, blur float64) *Berry {
	b := &Berry{
		cfg:   config.New(cellSize),
		grid:  grid,
		inset: inset,
		blur:  blur,
	}
	b.RandomPosition()
	return b
}

// Position returns the berry's cell origin.
func (b *Berry) Position() core.Point {
	return b.pos
}

// RandomPosition moves the berry to a random cell.
func (b *Berry) RandomPosition() {
	b.pos = b.grid.Position()
}

// SetSkin applies a color theme to this berry's Config.
func (b *Berry) SetSkin(skin int) {
	b.cfg.SetSkin(skin)
}

// Draw paints a square smaller than a cell, centered on it, with glow.
func (b *Berry) Draw(c core.Canvas) {
	cell := float64(b.cfg.CellSize)
	c.SetFillColor(b.cfg.HighlightColor)
	c.SetGlow(b.cfg.HighlightColor, b.blur)
	c.FillRect(
		float64(b.pos.X)+b.inset/2,
		float64(b.pos.Y)+b.inset/2,
		cell-b.inset,
		cell-b.inset,
	)
}
