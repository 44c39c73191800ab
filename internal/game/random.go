package game

import (
	"math/rand"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// RandomGrid produces grid-aligned random positions inside the canvas.
// Each axis is drawn independently and uniformly. Occupied cells are not
// excluded.
type RandomGrid struct {
	rng    *rand.Rand
	width  int
	height int
	cell   int
}

// NewRandomGrid creates a position source for a width x height canvas.
func NewRandomGrid(rng *rand.Rand, width, height, cell int) *RandomGrid {
	return &RandomGrid{rng: rng, width: width, height: height, cell: cell}
}

// Position returns a random cell origin.
func (g *RandomGrid) Position() core.Point {
	return core.Point{
		X: g.rng.Intn(g.width/g.cell) * g.cell,
		Y: g.rng.Intn(g.height/g.cell) * g.cell,
	}
}
