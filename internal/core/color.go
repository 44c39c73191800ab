package core

// Color is a hex RGB color such as "#910033".
// The zero value means "no color" and renders with the terminal default.
type Color string

// ColorNone is the empty color used for cleared cells.
const ColorNone Color = ""

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool {
	return c == ColorNone
}
