package core

// Canvas is the immediate-mode drawing surface the simulation renders into.
// Coordinates are surface units (the board is 400x400 by default), not
// terminal cells.
type Canvas interface {
	// ClearRect erases everything inside the rectangle.
	ClearRect(x, y, w, h float64)

	// FillRect paints the rectangle with the current fill color and glow.
	FillRect(x, y, w, h float64)

	// SetFillColor sets the color used by subsequent FillRect calls.
	SetFillColor(c Color)

	// SetGlow sets the shadow color and blur radius used by subsequent
	// FillRect calls. A zero blur disables the glow.
	SetGlow(c Color, blur float64)
}
