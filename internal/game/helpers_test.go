package game

import (
	"errors"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
)

// mapPrefs is a Prefs fake that counts writes and can fail on demand.
type mapPrefs struct {
	values  map[string]int
	writes  int
	failSet bool
}

func newMapPrefs() *mapPrefs {
	return &mapPrefs{values: make(map[string]int)}
}

func (p *mapPrefs) Int(key string, def int) (int, error) {
	if v, ok := p.values[key]; ok {
		return v, nil
	}
	return def, nil
}

func (p *mapPrefs) SetInt(key string, value int) error {
	if p.failSet {
		return errors.New("disk full")
	}
	p.values[key] = value
	p.writes++
	return nil
}

type fillCall struct {
	x, y, w, h float64
	color      core.Color
	glow       core.Color
	blur       float64
}

// recordCanvas records FillRect calls with the state active at the time.
type recordCanvas struct {
	clears []core.RectF
	fills  []fillCall
	color  core.Color
	glow   core.Color
	blur   float64
}

func (c *recordCanvas) ClearRect(x, y, w, h float64) {
	c.clears = append(c.clears, core.RectF{X: x, Y: y, W: w, H: h})
	c.fills = nil
}

func (c *recordCanvas) FillRect(x, y, w, h float64) {
	c.fills = append(c.fills, fillCall{x, y, w, h, c.color, c.glow, c.blur})
}

func (c *recordCanvas) SetFillColor(col core.Color) { c.color = col }

func (c *recordCanvas) SetGlow(col core.Color, blur float64) {
	c.glow = col
	c.blur = blur
}

func newTestGame(seed int64, prefs Prefs) (*Game, *recordCanvas) {
	canvas := &recordCanvas{}
	g := New(canvas, Options{
		Settings: config.DefaultSettings(),
		Seed:     seed,
		Prefs:    prefs,
	})
	return g, canvas
}

// place puts the head at pos with no body yet.
func (s *Snake) place(pos, vel core.Point) {
	s.pos = pos
	s.vel = vel
	s.segments = nil
}

// park moves every berry to a cell the tests keep clear of.
func (g *Game) park() {
	for _, b := range g.berries {
		b.pos = core.Point{X: 384, Y: 384}
	}
}
