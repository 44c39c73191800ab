// Package game implements the snake simulation: the snake state machine,
// berries, score tracking and the Game composition root that ties them to
// the scheduler.
package game

import (
	"slices"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
)

// Direction is a steering request.
type Direction int

// Steering directions, mapped from the arrow and WASD keys.
const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// StartLength is the snake's maximum length after a reset.
const StartLength = 3

// Snake is the simulation state machine.
type Snake struct {
	cfg      *config.Config
	grid     *RandomGrid
	width    int
	height   int
	glowBlur float64

	pos       core.Point   // Head coordinate
	vel       core.Point   // (dx, dy), one axis non-zero
	segments  []core.Point // Head at index 0
	maxLength int
}

// NewSnake creates a snake at a random cell moving right. It has no
// segments until the first Advance.
func NewSnake(grid *RandomGrid, width, height, cellSize int, glowBlur float64) *Snake {
	s := &Snake{
		cfg:      config.New(cellSize),
		grid:     grid,
		width:    width,
		height:   height,
		glowBlur: glowBlur,
	}
	s.Reset()
	return s
}

// SetSkin applies a color theme to this snake's Config.
func (s *Snake) SetSkin(skin int) {
	s.cfg.SetSkin(skin)
}

// SetDirection turns the snake by 90 degrees. The request is accepted only
// when the velocity's component on the requested axis is zero, so a 180
// degree reversal and a repeat of the current direction are both rejected.
// Returns whether the velocity changed.
func (s *Snake) SetDirection(d Direction) bool {
	cell := s.cfg.CellSize
	switch d {
	case DirUp:
		if s.vel.Y == 0 {
			s.vel = core.Point{X: 0, Y: -cell}
			return true
		}
	case DirDown:
		if s.vel.Y == 0 {
			s.vel = core.Point{X: 0, Y: cell}
			return true
		}
	case DirLeft:
		if s.vel.X == 0 {
			s.vel = core.Point{X: -cell, Y: 0}
			return true
		}
	case DirRight:
		if s.vel.X == 0 {
			s.vel = core.Point{X: cell, Y: 0}
			return true
		}
	}
	return false
}

// Advance moves the head one cell, wrapping each axis independently, pushes
// it to the front and drops one tail segment when over maxLength.
func (s *Snake) Advance() {
	cell := s.cfg.CellSize
	next := s.pos.Add(s.vel)
	next.X = core.Wrap(next.X, s.width, cell)
	next.Y = core.Wrap(next.Y, s.height, cell)
	s.pos = next

	s.segments = slices.Insert(s.segments, 0, next)
	if len(s.segments) > s.maxLength {
		s.segments = s.segments[:len(s.segments)-1]
	}
}

// CheckConsumption compares every segment, not only the head, with every
// active berry. Each match grows the snake, scores a point and moves the
// berry to a random cell, which may land on the snake or another berry.
// Returns the number of berries eaten.
func (s *Snake) CheckConsumption(active []*Berry, score *ScoreTracker) int {
	eaten := 0
	for _, seg := range s.segments {
		for _, b := range active {
			if seg != b.Position() {
				continue
			}
			s.maxLength++
			score.Increment()
			b.RandomPosition()
			eaten++
		}
	}
	return eaten
}

// CheckSelfCollision reports whether any two segments share a cell.
// It scans head to tail, including the head pushed by the last Advance.
func (s *Snake) CheckSelfCollision() bool {
	for i := range s.segments {
		for j := i + 1; j < len(s.segments); j++ {
			if s.segments[i] == s.segments[j] {
				return true
			}
		}
	}
	return false
}

// Reset puts the snake back to its starting state at a random cell.
func (s *Snake) Reset() {
	s.pos = s.grid.Position()
	s.vel = core.Point{X: s.cfg.CellSize, Y: 0}
	s.segments = s.segments[:0]
	s.maxLength = StartLength
}

// Draw paints every segment as a full cell. The head uses the highlight
// color, the body the base color, all with a highlight glow.
func (s *Snake) Draw(c core.Canvas) {
	cell := float64(s.cfg.CellSize)
	for i, seg := range s.segments {
		if i == 0 {
			c.SetFillColor(s.cfg.HighlightColor)
		} else {
			c.SetFillColor(s.cfg.Color)
		}
		c.SetGlow(s.cfg.HighlightColor, s.glowBlur)
		c.FillRect(float64(seg.X), float64(seg.Y), cell, cell)
	}
}

// Head returns the head coordinate.
func (s *Snake) Head() core.Point {
	return s.pos
}

// Velocity returns the current (dx, dy).
func (s *Snake) Velocity() core.Point {
	return s.vel
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []core.Point {
	return slices.Clone(s.segments)
}

// MaxLength returns the current length cap.
func (s *Snake) MaxLength() int {
	return s.maxLength
}
