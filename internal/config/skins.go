package config

import "github.com/vovakirdan/neon-snake/internal/core"

// Skin identifiers as persisted under the "skin" key.
const (
	SkinPink = 1
	SkinBlue = 2
	SkinRed  = 3
)

// Theme is a base color plus a brighter highlight color.
type Theme struct {
	Name      string
	Color     core.Color
	Highlight core.Color
}

// Themes maps each skin to its literal color pair.
var Themes = map[int]Theme{
	SkinPink: {Name: "pink", Color: "#910033", Highlight: "#E10056"},
	SkinBlue: {Name: "blue", Color: "#120286", Highlight: "#1C00EC"},
	SkinRed:  {Name: "red", Color: "#BA0100", Highlight: "#FF0100"},
}

// ThemeFor returns the theme for a skin and whether the skin exists.
func ThemeFor(skin int) (Theme, bool) {
	t, ok := Themes[skin]
	return t, ok
}
