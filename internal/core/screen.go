package core

import (
	"slices"
	"strings"
)

// Glyphs used when a filled rectangle is rasterised onto terminal cells.
const (
	GlyphFull    = '█' // cell entirely inside the rectangle
	GlyphPartial = '▪' // rectangle covers only part of the cell
)

// Cell is one terminal character with its styling.
type Cell struct {
	Rune  rune
	Color Color
	Glow  bool
}

// Screen is a 2D character buffer that implements Canvas.
// Surface units are mapped onto cells by a fixed scale (unitW x unitH units
// per cell), so the simulation draws in its own coordinates while the
// platform displays characters.
type Screen struct {
	width  int
	height int
	unitW  float64
	unitH  float64
	cells  [][]Cell

	fill     Color
	glow     Color
	glowBlur float64
}

// NewCanvasScreen creates a screen sized for a canvasW x canvasH surface
// drawn on a grid of cellSize units. Each grid cell becomes two characters
// wide and one tall, which keeps squares roughly square in a terminal.
func NewCanvasScreen(canvasW, canvasH, cellSize int) *Screen {
	unitW := float64(cellSize) / 2
	unitH := float64(cellSize)
	return newScreen(canvasW*2/cellSize, canvasH/cellSize, unitW, unitH)
}

func newScreen(width, height int, unitW, unitH float64) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		unitW:  unitW,
		unitH:  unitH,
	}
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clone returns a copy of the screen with its own cell buffer.
func (s *Screen) Clone() *Screen {
	c := *s
	c.cells = make([][]Cell, s.height)
	for y := range s.cells {
		c.cells[y] = slices.Clone(s.cells[y])
	}
	return &c
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune at the given position with no color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a styled cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// DrawBox draws a box outline using box-drawing characters.
// The interior is blanked so overlays stay readable.
func (s *Screen) DrawBox(x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			s.Set(xx, yy, ' ')
		}
	}

	s.Set(x, y, '┌')
	s.Set(x+w-1, y, '┐')
	s.Set(x, y+h-1, '└')
	s.Set(x+w-1, y+h-1, '┘')

	for xx := x + 1; xx < x+w-1; xx++ {
		s.Set(xx, y, '─')
		s.Set(xx, y+h-1, '─')
	}
	for yy := y + 1; yy < y+h-1; yy++ {
		s.Set(x, yy, '│')
		s.Set(x+w-1, yy, '│')
	}
}

// ClearRect implements Canvas.
func (s *Screen) ClearRect(x, y, w, h float64) {
	area := RectF{X: x, Y: y, W: w, H: h}
	s.eachCell(area, func(cx, cy int, _ RectF) {
		s.cells[cy][cx] = Cell{Rune: ' '}
	})
}

// FillRect implements Canvas. Cells fully inside the rectangle get
// GlyphFull, cells only partly covered get GlyphPartial.
func (s *Screen) FillRect(x, y, w, h float64) {
	area := RectF{X: x, Y: y, W: w, H: h}
	glow := s.glowBlur > 0 && !s.glow.IsZero()
	s.eachCell(area, func(cx, cy int, cell RectF) {
		r := GlyphPartial
		if area.Covers(cell) {
			r = GlyphFull
		}
		s.cells[cy][cx] = Cell{Rune: r, Color: s.fill, Glow: glow}
	})
}

// SetFillColor implements Canvas.
func (s *Screen) SetFillColor(c Color) {
	s.fill = c
}

// SetGlow implements Canvas.
func (s *Screen) SetGlow(c Color, blur float64) {
	s.glow = c
	s.glowBlur = blur
}

// eachCell calls fn for every in-bounds cell that overlaps area.
func (s *Screen) eachCell(area RectF, fn func(cx, cy int, cell RectF)) {
	if area.W <= 0 || area.H <= 0 {
		return
	}
	x0 := Clamp(int(area.X/s.unitW), 0, s.width)
	y0 := Clamp(int(area.Y/s.unitH), 0, s.height)
	for cy := y0; cy < s.height; cy++ {
		top := float64(cy) * s.unitH
		if top >= area.Bottom() {
			break
		}
		for cx := x0; cx < s.width; cx++ {
			left := float64(cx) * s.unitW
			if left >= area.Right() {
				break
			}
			cell := RectF{X: left, Y: top, W: s.unitW, H: s.unitH}
			if area.Intersects(cell) {
				fn(cx, cy, cell)
			}
		}
	}
}

// String converts the screen buffer to plain text, one row per line.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

var _ Canvas = (*Screen)(nil)
